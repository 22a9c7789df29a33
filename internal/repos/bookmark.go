package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type BookmarkRepo interface {
	// Create inserts the bookmark unless the pair exists; reports whether a
	// new row was written.
	Create(ctx context.Context, tx *gorm.DB, bookmark *types.Bookmark) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Bookmark, error)
}

type bookmarkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookmarkRepo(db *gorm.DB, baseLog *logger.Logger) BookmarkRepo {
	return &bookmarkRepo{db: db, log: baseLog.With("repo", "BookmarkRepo")}
}

func (r *bookmarkRepo) Create(ctx context.Context, tx *gorm.DB, bookmark *types.Bookmark) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(bookmark)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *bookmarkRepo) Delete(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&types.Bookmark{}).Error
}

func (r *bookmarkRepo) Exists(ctx context.Context, tx *gorm.DB, userID, postID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Bookmark{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookmarkRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Bookmark, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var bookmarks []*types.Bookmark
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}
