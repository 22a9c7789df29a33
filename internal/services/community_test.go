package services

import (
	"context"
	"errors"
	"testing"
)

func TestCommunityLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	community, err := env.communitySvc.Create(ctx, alice.ID, "gophers", "all things go")
	if err != nil {
		t.Fatalf("create community: %v", err)
	}

	// The creator is a member immediately.
	if _, err := env.communitySvc.CreatePost(ctx, alice.ID, community.ID, "welcome"); err != nil {
		t.Fatalf("creator post: %v", err)
	}

	// Non-members cannot post.
	if _, err := env.communitySvc.CreatePost(ctx, bob.ID, community.ID, "hi"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("non-member post: got %v, want ErrNotMember", err)
	}

	if err := env.communitySvc.Join(ctx, bob.ID, community.ID); err != nil {
		t.Fatalf("join: %v", err)
	}
	post, err := env.communitySvc.CreatePost(ctx, bob.ID, community.ID, "hello from bob")
	if err != nil {
		t.Fatalf("member post: %v", err)
	}

	if _, err := env.communitySvc.AddComment(ctx, alice.ID, post.ID, "welcome aboard"); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if err := env.communitySvc.LikePost(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	// Duplicate likes are absorbed.
	if err := env.communitySvc.LikePost(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("duplicate like: %v", err)
	}

	posts, err := env.communitySvc.Posts(ctx, community.ID)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("posts = %d, want 2", len(posts))
	}

	if err := env.communitySvc.Leave(ctx, bob.ID, community.ID); err != nil {
		t.Fatalf("leave: %v", err)
	}
	if _, err := env.communitySvc.CreatePost(ctx, bob.ID, community.ID, "still here?"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("post after leave: got %v, want ErrNotMember", err)
	}

	// Community activity stays out of the reputation engine.
	if profile := env.profile(t, bob.ID); profile.ActionPoints != 0 {
		t.Errorf("action points = %d, want 0", profile.ActionPoints)
	}
}

func TestCommunityNameUnique(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	if _, err := env.communitySvc.Create(ctx, alice.ID, "gophers", ""); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := env.communitySvc.Create(ctx, alice.ID, "gophers", ""); err == nil {
		t.Fatal("expected duplicate name to fail")
	}
}
