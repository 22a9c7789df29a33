package services

import (
	"context"
	"testing"
)

func TestBookmarkToggle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	post, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	saved, err := env.bookmarkSvc.Toggle(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if !saved {
		t.Error("expected post to be bookmarked")
	}

	list, err := env.bookmarkSvc.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("bookmarks = %d, want 1", len(list))
	}

	saved, err = env.bookmarkSvc.Toggle(ctx, bob.ID, post.ID)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if saved {
		t.Error("expected bookmark to be removed")
	}

	list, err = env.bookmarkSvc.List(ctx, bob.ID)
	if err != nil {
		t.Fatalf("list after toggle off: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("bookmarks = %d, want 0", len(list))
	}

	// Bookmarks never touch the reputation engine.
	if profile := env.profile(t, bob.ID); profile.ActionPoints != 0 {
		t.Errorf("action points = %d, want 0", profile.ActionPoints)
	}
}
