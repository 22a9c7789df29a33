package services

import (
	"context"
	"errors"
	"testing"
)

func TestMessageConversation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	if _, err := env.messageSvc.Send(ctx, alice.ID, bob.ID, "hey bob"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := env.messageSvc.Send(ctx, bob.ID, alice.ID, "hey alice"); err != nil {
		t.Fatalf("reply: %v", err)
	}

	thread, err := env.messageSvc.Conversation(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("thread length = %d, want 2", len(thread))
	}
	if thread[0].Content != "hey bob" {
		t.Errorf("thread not oldest-first: %q", thread[0].Content)
	}

	// Reading the conversation marked bob's message read.
	unread, err := env.messages.CountUnreadFrom(ctx, nil, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread after read = %d, want 0", unread)
	}
}

func TestMessageOverview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	if _, err := env.messageSvc.Send(ctx, bob.ID, alice.ID, "first"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := env.messageSvc.Send(ctx, carol.ID, alice.ID, "second"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := env.messageSvc.Send(ctx, carol.ID, alice.ID, "third"); err != nil {
		t.Fatalf("send: %v", err)
	}

	overview, err := env.messageSvc.Overview(ctx, alice.ID)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview) != 2 {
		t.Fatalf("overview rows = %d, want 2", len(overview))
	}
	for _, row := range overview {
		switch row.PartnerID {
		case bob.ID:
			if row.UnreadCount != 1 {
				t.Errorf("bob unread = %d, want 1", row.UnreadCount)
			}
		case carol.ID:
			if row.UnreadCount != 2 {
				t.Errorf("carol unread = %d, want 2", row.UnreadCount)
			}
		default:
			t.Errorf("unexpected partner %s", row.PartnerID)
		}
	}
}

func TestMessageValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	if _, err := env.messageSvc.Send(ctx, alice.ID, bob.ID, "   "); !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("blank body: got %v, want ErrEmptyContent", err)
	}
	if _, err := env.messageSvc.Send(ctx, alice.ID, alice.ID, "hi me"); err == nil {
		t.Fatal("expected error messaging yourself")
	}
}
