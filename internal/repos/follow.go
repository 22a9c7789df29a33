package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type FollowRepo interface {
	// Create inserts the follow unless the (follower, following) pair exists.
	// It reports whether a new row was written.
	Create(ctx context.Context, tx *gorm.DB, follow *types.Follow) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) error
	Exists(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) (bool, error)
	CountFollowers(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
	CountFollowing(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type followRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFollowRepo(db *gorm.DB, baseLog *logger.Logger) FollowRepo {
	return &followRepo{db: db, log: baseLog.With("repo", "FollowRepo")}
}

func (r *followRepo) Create(ctx context.Context, tx *gorm.DB, follow *types.Follow) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(follow)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepo) Delete(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&types.Follow{}).Error
}

func (r *followRepo) Exists(ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepo) CountFollowers(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *followRepo) CountFollowing(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
