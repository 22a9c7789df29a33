package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pulsefeed/pulsefeed-core/internal/utils"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.userSvc.Register(ctx, "alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.PasswordHash == "s3cret-pass" {
		t.Error("password stored in plain text")
	}
	if err := utils.CheckPassword(user.PasswordHash, "s3cret-pass"); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}

	profile := env.profile(t, user.ID)
	if profile.Level != 1 {
		t.Errorf("new profile level = %d, want 1", profile.Level)
	}

	if _, err := env.userSvc.Register(ctx, "alice", "other"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("duplicate register: got %v, want ErrUsernameTaken", err)
	}
}

func TestGetProfileCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	carol := env.createUser(t, "carol")

	if err := env.followSvc.Follow(ctx, bob.ID, alice.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := env.followSvc.Follow(ctx, carol.ID, alice.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}

	view, err := env.userSvc.GetProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if view.FollowersCount != 2 {
		t.Errorf("followers = %d, want 2", view.FollowersCount)
	}
	if view.FollowingCount != 1 {
		t.Errorf("following = %d, want 1", view.FollowingCount)
	}
	if view.Profile.EngagementScore == 0 {
		t.Error("expected engagement score after gaining followers")
	}
}
