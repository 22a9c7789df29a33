package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type CommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) error
	GetByID(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (*types.Comment, error)
	Delete(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) error
	ListForPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Comment, error)
	CountReceivedByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (int64, error)
	// CreateLike inserts a comment-like unless the pair exists; reports
	// whether a new row was written.
	CreateLike(ctx context.Context, tx *gorm.DB, like *types.CommentLike) (bool, error)
}

type commentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommentRepo(db *gorm.DB, baseLog *logger.Logger) CommentRepo {
	return &commentRepo{db: db, log: baseLog.With("repo", "CommentRepo")}
}

func (r *commentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.Comment) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) GetByID(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) (*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var comment types.Comment
	if err := transaction.WithContext(ctx).
		Where("id = ?", commentID).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) Delete(ctx context.Context, tx *gorm.DB, commentID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&types.Comment{}).Error
}

func (r *commentRepo) ListForPost(ctx context.Context, tx *gorm.DB, postID uuid.UUID) ([]*types.Comment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var comments []*types.Comment
	if err := transaction.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepo) CountReceivedByAuthor(ctx context.Context, tx *gorm.DB, authorID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Comment{}).
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.user_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *commentRepo) CreateLike(ctx context.Context, tx *gorm.DB, like *types.CommentLike) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
