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

type PostService interface {
	// Create persists the post and, when it is published immediately,
	// dispatches the reputation event. Drafts dispatch nothing until
	// PublishDraft.
	Create(ctx context.Context, authorID uuid.UUID, content, status string) (*types.Post, error)
	// PublishDraft flips a draft to published and dispatches the event.
	// Publishing an already-published post is a no-op; the event never
	// fires twice for one post.
	PublishDraft(ctx context.Context, authorID, postID uuid.UUID) (*types.Post, error)
	Drafts(ctx context.Context, authorID uuid.UUID) ([]*types.Post, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*types.Post, error)
}

type postService struct {
	log        *logger.Logger
	posts      repos.PostRepo
	dispatcher Dispatcher
}

func NewPostService(baseLog *logger.Logger, posts repos.PostRepo, dispatcher Dispatcher) PostService {
	return &postService{
		log:        baseLog.With("service", "PostService"),
		posts:      posts,
		dispatcher: dispatcher,
	}
}

func (s *postService) Create(ctx context.Context, authorID uuid.UUID, content, status string) (*types.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if status == "" {
		status = types.PostStatusPublished
	}
	if status != types.PostStatusPublished && status != types.PostStatusDraft {
		return nil, fmt.Errorf("unknown post status %q", status)
	}

	post := &types.Post{UserID: authorID, Content: content, Status: status}
	if err := s.posts.Create(ctx, nil, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	if post.Status == types.PostStatusPublished {
		s.dispatcher.Dispatch(ctx, Event{
			Type:    EventPostCreated,
			ActorID: authorID,
			PostID:  post.ID,
		})
	}
	return post, nil
}

func (s *postService) PublishDraft(ctx context.Context, authorID, postID uuid.UUID) (*types.Post, error) {
	post, err := s.posts.GetByID(ctx, nil, postID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post.UserID != authorID {
		return nil, ErrNotOwner
	}
	if post.Status == types.PostStatusPublished {
		return post, nil
	}

	if err := s.posts.UpdateStatus(ctx, nil, postID, types.PostStatusPublished); err != nil {
		return nil, fmt.Errorf("publish post: %w", err)
	}
	post.Status = types.PostStatusPublished

	s.dispatcher.Dispatch(ctx, Event{
		Type:    EventPostCreated,
		ActorID: authorID,
		PostID:  post.ID,
	})
	return post, nil
}

func (s *postService) Drafts(ctx context.Context, authorID uuid.UUID) ([]*types.Post, error) {
	return s.posts.ListByUserAndStatus(ctx, nil, authorID, types.PostStatusDraft)
}

func (s *postService) GetByID(ctx context.Context, postID uuid.UUID) (*types.Post, error) {
	return s.posts.GetByID(ctx, nil, postID)
}
