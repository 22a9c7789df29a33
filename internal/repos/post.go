package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, post *types.Post) error
	GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error)
	RecentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Post, error)
	ListByUserAndStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.Post, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, postID uuid.UUID, status string) error
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) Create(ctx context.Context, tx *gorm.DB, post *types.Post) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(post).Error
}

func (r *postRepo) GetByID(ctx context.Context, tx *gorm.DB, postID uuid.UUID) (*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var post types.Post
	if err := transaction.WithContext(ctx).
		Where("id = ?", postID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// RecentByUser returns the user's newest published posts first; the
// aggregator samples its quality window from these. Drafts never feed the
// window.
func (r *postRepo) RecentByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID, limit int) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var posts []*types.Post
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, types.PostStatusPublished).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) ListByUserAndStatus(ctx context.Context, tx *gorm.DB, userID uuid.UUID, status string) ([]*types.Post, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var posts []*types.Post
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, status).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, postID uuid.UUID, status string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Post{}).
		Where("id = ?", postID).
		Update("status", status).Error
}
