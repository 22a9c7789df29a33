package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type CommentService interface {
	Add(ctx context.Context, userID, postID uuid.UUID, text string, parentID *uuid.UUID) (*types.Comment, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
	ListForPost(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error)
	// LikeComment deduplicates per (user, comment). Comment-likes do not
	// feed the reputation engine.
	LikeComment(ctx context.Context, userID, commentID uuid.UUID) error
}

type commentService struct {
	log           *logger.Logger
	posts         repos.PostRepo
	comments      repos.CommentRepo
	notifications repos.NotificationRepo
	dispatcher    Dispatcher
}

func NewCommentService(baseLog *logger.Logger, posts repos.PostRepo, comments repos.CommentRepo, notifications repos.NotificationRepo, dispatcher Dispatcher) CommentService {
	return &commentService{
		log:           baseLog.With("service", "CommentService"),
		posts:         posts,
		comments:      comments,
		notifications: notifications,
		dispatcher:    dispatcher,
	}
}

func (s *commentService) Add(ctx context.Context, userID, postID uuid.UUID, text string, parentID *uuid.UUID) (*types.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyContent
	}
	post, err := s.posts.GetByID(ctx, nil, postID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if parentID != nil {
		parent, err := s.comments.GetByID(ctx, nil, *parentID)
		if err != nil {
			return nil, fmt.Errorf("load parent comment: %w", err)
		}
		if parent.PostID != postID {
			return nil, fmt.Errorf("parent comment belongs to a different post")
		}
	}

	comment := &types.Comment{UserID: userID, PostID: postID, ParentID: parentID, Text: text}
	if err := s.comments.Create(ctx, nil, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if post.UserID != userID {
		notification := &types.Notification{
			SenderID:    userID,
			RecipientID: post.UserID,
			Type:        types.NotificationComment,
			PostID:      &post.ID,
		}
		if err := s.notifications.Create(ctx, nil, notification); err != nil {
			s.log.Error("comment notification failed", "post_id", postID, "error", err)
		}
	}

	s.dispatcher.Dispatch(ctx, Event{
		Type:        EventCommentCreated,
		ActorID:     userID,
		RecipientID: post.UserID,
		PostID:      postID,
	})
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, nil, commentID)
	if err != nil {
		return fmt.Errorf("load comment: %w", err)
	}
	if comment.UserID != userID {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, nil, commentID)
}

func (s *commentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]*types.Comment, error) {
	return s.comments.ListForPost(ctx, nil, postID)
}

func (s *commentService) LikeComment(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := s.comments.GetByID(ctx, nil, commentID); err != nil {
		return fmt.Errorf("load comment: %w", err)
	}
	if _, err := s.comments.CreateLike(ctx, nil, &types.CommentLike{UserID: userID, CommentID: commentID}); err != nil {
		return fmt.Errorf("create comment like: %w", err)
	}
	return nil
}
