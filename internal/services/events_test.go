package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

func TestPostCreatedAwardsActionPoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	if _, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", ""); err != nil {
		t.Fatalf("create post: %v", err)
	}

	profile := env.profile(t, alice.ID)
	if profile.ActionPoints != 2 {
		t.Errorf("action points = %d, want 2", profile.ActionPoints)
	}
	if profile.AIScore != 100 {
		t.Errorf("ai score = %v, want 100", profile.AIScore)
	}
}

func TestDraftDispatchesNothingUntilPublished(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	post, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", types.PostStatusDraft)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	profile := env.profile(t, alice.ID)
	if profile.ActionPoints != 0 {
		t.Errorf("action points after draft = %d, want 0", profile.ActionPoints)
	}
	if profile.AIScore != 0 {
		t.Errorf("ai score after draft = %v, want 0", profile.AIScore)
	}

	drafts, err := env.postSvc.Drafts(ctx, alice.ID)
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}

	if _, err := env.postSvc.PublishDraft(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}
	profile = env.profile(t, alice.ID)
	if profile.ActionPoints != 2 {
		t.Errorf("action points after publish = %d, want 2", profile.ActionPoints)
	}
	if profile.AIScore != 100 {
		t.Errorf("ai score after publish = %v, want 100", profile.AIScore)
	}

	// Publishing again is a no-op and must not double-award.
	if _, err := env.postSvc.PublishDraft(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("republish: %v", err)
	}
	profile = env.profile(t, alice.ID)
	if profile.ActionPoints != 2 {
		t.Errorf("action points after republish = %d, want 2", profile.ActionPoints)
	}
}

func TestPublishDraftRequiresOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	post, err := env.postSvc.Create(ctx, alice.ID, "A draft only alice may publish here", types.PostStatusDraft)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	if _, err := env.postSvc.PublishDraft(ctx, bob.ID, post.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("publish by non-owner: got %v, want ErrNotOwner", err)
	}
}

func TestDuplicateLikeIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	post, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := env.likeSvc.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("first like: %v", err)
	}
	if err := env.likeSvc.Like(ctx, bob.ID, post.ID); err != nil {
		t.Fatalf("second like: %v", err)
	}

	count, err := env.likes.CountForPost(ctx, nil, post.ID)
	if err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if count != 1 {
		t.Errorf("like rows = %d, want 1", count)
	}

	liker := env.profile(t, bob.ID)
	if liker.ActionPoints != 1 {
		t.Errorf("liker action points = %d, want 1", liker.ActionPoints)
	}

	notifications, err := env.notifications.Recent(ctx, nil, alice.ID, 10)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 1 {
		t.Errorf("notifications = %d, want 1", len(notifications))
	}
}

func TestSelfLikeSkipsNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	post, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if err := env.likeSvc.Like(ctx, alice.ID, post.ID); err != nil {
		t.Fatalf("self like: %v", err)
	}

	unread, err := env.notifications.CountUnread(ctx, nil, alice.ID)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 0 {
		t.Errorf("unread notifications = %d, want 0", unread)
	}
	// Post creation awarded 2, the self-like 1 more.
	if profile := env.profile(t, alice.ID); profile.ActionPoints != 3 {
		t.Errorf("action points = %d, want 3", profile.ActionPoints)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	if err := env.followSvc.Follow(ctx, alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("self follow: got %v, want ErrSelfFollow", err)
	}

	followers, err := env.follows.CountFollowers(ctx, nil, alice.ID)
	if err != nil {
		t.Fatalf("count followers: %v", err)
	}
	if followers != 0 {
		t.Errorf("followers = %d, want 0", followers)
	}
	if profile := env.profile(t, alice.ID); profile.ActionPoints != 0 {
		t.Errorf("action points = %d, want 0", profile.ActionPoints)
	}
}

func TestFollowAwardsAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	// Duplicate follow changes nothing.
	if err := env.followSvc.Follow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("duplicate follow: %v", err)
	}

	follower := env.profile(t, alice.ID)
	if follower.ActionPoints != 1 {
		t.Errorf("follower action points = %d, want 1", follower.ActionPoints)
	}
	unread, err := env.notifications.CountUnread(ctx, nil, bob.ID)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if unread != 1 {
		t.Errorf("unread notifications = %d, want 1", unread)
	}

	following, err := env.followSvc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("is following: %v", err)
	}
	if !following {
		t.Error("expected alice to follow bob")
	}

	if err := env.followSvc.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}
	following, err = env.followSvc.IsFollowing(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("is following after unfollow: %v", err)
	}
	if following {
		t.Error("expected follow to be removed")
	}
}

func TestCommentRecalculatesBothSides(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")

	post, err := env.postSvc.Create(ctx, alice.ID, "The quick brown fox jumps over the lazy dog while the cat watches quietly", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if _, err := env.commentSvc.Add(ctx, bob.ID, post.ID, "Nice one", nil); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	author := env.profile(t, alice.ID)
	if author.EngagementScore == 0 {
		t.Error("author engagement not recalculated after comment")
	}
	commenter := env.profile(t, bob.ID)
	if commenter.ActionPoints != 1 {
		t.Errorf("commenter action points = %d, want 1", commenter.ActionPoints)
	}
}
