package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type LikeService interface {
	// Like is idempotent: a duplicate (user, post) submission writes
	// nothing, notifies nobody and dispatches no event.
	Like(ctx context.Context, userID, postID uuid.UUID) error
	Unlike(ctx context.Context, userID, postID uuid.UUID) error
}

type likeService struct {
	log           *logger.Logger
	posts         repos.PostRepo
	likes         repos.LikeRepo
	notifications repos.NotificationRepo
	dispatcher    Dispatcher
}

func NewLikeService(baseLog *logger.Logger, posts repos.PostRepo, likes repos.LikeRepo, notifications repos.NotificationRepo, dispatcher Dispatcher) LikeService {
	return &likeService{
		log:           baseLog.With("service", "LikeService"),
		posts:         posts,
		likes:         likes,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *likeService) Like(ctx context.Context, userID, postID uuid.UUID) error {
	post, err := s.posts.GetByID(ctx, nil, postID)
	if err != nil {
		return fmt.Errorf("load post: %w", err)
	}

	created, err := s.likes.Create(ctx, nil, &types.Like{UserID: userID, PostID: postID})
	if err != nil {
		return fmt.Errorf("create like: %w", err)
	}
	if !created {
		return nil
	}

	if post.UserID != userID {
		notification := &types.Notification{
			SenderID:    userID,
			RecipientID: post.UserID,
			Type:        types.NotificationLike,
			PostID:      &post.ID,
		}
		if err := s.notifications.Create(ctx, nil, notification); err != nil {
			s.log.Error("like notification failed", "post_id", postID, "error", err)
		}
	}

	s.dispatcher.Dispatch(ctx, Event{
		Type:        EventLikeCreated,
		ActorID:     userID,
		RecipientID: post.UserID,
		PostID:      postID,
	})
	return nil
}

func (s *likeService) Unlike(ctx context.Context, userID, postID uuid.UUID) error {
	return s.likes.Delete(ctx, nil, userID, postID)
}
