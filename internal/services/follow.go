package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type FollowService interface {
	// Follow rejects self-follows before any write and is idempotent for
	// an existing (follower, following) pair: no row, no notification, no
	// reputation event.
	Follow(ctx context.Context, followerID, followingID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error
	IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)
}

type followService struct {
	log           *logger.Logger
	follows       repos.FollowRepo
	notifications repos.NotificationRepo
	dispatcher    Dispatcher
}

func NewFollowService(baseLog *logger.Logger, follows repos.FollowRepo, notifications repos.NotificationRepo, dispatcher Dispatcher) FollowService {
	return &followService{
		log:           baseLog.With("service", "FollowService"),
		follows:       follows,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, followingID uuid.UUID) error {
	if followerID == followingID {
		return ErrSelfFollow
	}

	created, err := s.follows.Create(ctx, nil, &types.Follow{FollowerID: followerID, FollowingID: followingID})
	if err != nil {
		return fmt.Errorf("create follow: %w", err)
	}
	if !created {
		return nil
	}

	notification := &types.Notification{
		SenderID:    followerID,
		RecipientID: followingID,
		Type:        types.NotificationFollow,
	}
	if err := s.notifications.Create(ctx, nil, notification); err != nil {
		s.log.Error("follow notification failed", "recipient_id", followingID, "error", err)
	}

	s.dispatcher.Dispatch(ctx, Event{
		Type:        EventFollowCreated,
		ActorID:     followerID,
		RecipientID: followingID,
	})
	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followingID uuid.UUID) error {
	return s.follows.Delete(ctx, nil, followerID, followingID)
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	return s.follows.Exists(ctx, nil, followerID, followingID)
}
