package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type BookmarkService interface {
	// Toggle saves the post if unsaved, removes it otherwise. Returns
	// true when the post is bookmarked after the call.
	Toggle(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Bookmark, error)
}

type bookmarkService struct {
	log       *logger.Logger
	posts     repos.PostRepo
	bookmarks repos.BookmarkRepo
}

func NewBookmarkService(baseLog *logger.Logger, posts repos.PostRepo, bookmarks repos.BookmarkRepo) BookmarkService {
	return &bookmarkService{
		log:       baseLog.With("service", "BookmarkService"),
		posts:     posts,
		bookmarks: bookmarks,
	}
}

func (s *bookmarkService) Toggle(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	if _, err := s.posts.GetByID(ctx, nil, postID); err != nil {
		return false, fmt.Errorf("load post: %w", err)
	}

	created, err := s.bookmarks.Create(ctx, nil, &types.Bookmark{UserID: userID, PostID: postID})
	if err != nil {
		return false, fmt.Errorf("create bookmark: %w", err)
	}
	if created {
		return true, nil
	}
	if err := s.bookmarks.Delete(ctx, nil, userID, postID); err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	return false, nil
}

func (s *bookmarkService) List(ctx context.Context, userID uuid.UUID) ([]*types.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, nil, userID)
}
