package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type CommunityRepo interface {
	Create(ctx context.Context, tx *gorm.DB, community *types.Community) error
	GetByID(ctx context.Context, tx *gorm.DB, communityID uuid.UUID) (*types.Community, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Community, error)
	AddMember(ctx context.Context, tx *gorm.DB, member *types.CommunityMember) (bool, error)
	RemoveMember(ctx context.Context, tx *gorm.DB, communityID, userID uuid.UUID) error
	IsMember(ctx context.Context, tx *gorm.DB, communityID, userID uuid.UUID) (bool, error)
	CreatePost(ctx context.Context, tx *gorm.DB, post *types.CommunityPost) error
	ListPosts(ctx context.Context, tx *gorm.DB, communityID uuid.UUID, limit int) ([]*types.CommunityPost, error)
	CreateComment(ctx context.Context, tx *gorm.DB, comment *types.CommunityComment) error
	LikePost(ctx context.Context, tx *gorm.DB, like *types.CommunityPostLike) (bool, error)
}

type communityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCommunityRepo(db *gorm.DB, baseLog *logger.Logger) CommunityRepo {
	return &communityRepo{db: db, log: baseLog.With("repo", "CommunityRepo")}
}

func (r *communityRepo) Create(ctx context.Context, tx *gorm.DB, community *types.Community) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(community).Error
}

func (r *communityRepo) GetByID(ctx context.Context, tx *gorm.DB, communityID uuid.UUID) (*types.Community, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var community types.Community
	if err := transaction.WithContext(ctx).
		Where("id = ?", communityID).
		First(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.Community, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var community types.Community
	if err := transaction.WithContext(ctx).
		Where("name = ?", name).
		First(&community).Error; err != nil {
		return nil, err
	}
	return &community, nil
}

func (r *communityRepo) AddMember(ctx context.Context, tx *gorm.DB, member *types.CommunityMember) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(member)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *communityRepo) RemoveMember(ctx context.Context, tx *gorm.DB, communityID, userID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&types.CommunityMember{}).Error
}

func (r *communityRepo) IsMember(ctx context.Context, tx *gorm.DB, communityID, userID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *communityRepo) CreatePost(ctx context.Context, tx *gorm.DB, post *types.CommunityPost) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(post).Error
}

func (r *communityRepo) ListPosts(ctx context.Context, tx *gorm.DB, communityID uuid.UUID, limit int) ([]*types.CommunityPost, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var posts []*types.CommunityPost
	if err := transaction.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *communityRepo) CreateComment(ctx context.Context, tx *gorm.DB, comment *types.CommunityComment) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(comment).Error
}

func (r *communityRepo) LikePost(ctx context.Context, tx *gorm.DB, like *types.CommunityPostLike) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	result := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
