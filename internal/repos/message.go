package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

type MessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, message *types.Message) error
	Between(ctx context.Context, tx *gorm.DB, userID, peerID uuid.UUID) ([]*types.Message, error)
	LastBetween(ctx context.Context, tx *gorm.DB, userID, peerID uuid.UUID) (*types.Message, error)
	MarkReadFrom(ctx context.Context, tx *gorm.DB, senderID, recipientID uuid.UUID) error
	CountUnreadFrom(ctx context.Context, tx *gorm.DB, senderID, recipientID uuid.UUID) (int64, error)
	Partners(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error)
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
	return &messageRepo{db: db, log: baseLog.With("repo", "MessageRepo")}
}

func (r *messageRepo) Create(ctx context.Context, tx *gorm.DB, message *types.Message) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Create(message).Error
}

func (r *messageRepo) Between(ctx context.Context, tx *gorm.DB, userID, peerID uuid.UUID) ([]*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var messages []*types.Message
	if err := transaction.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) LastBetween(ctx context.Context, tx *gorm.DB, userID, peerID uuid.UUID) (*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var message types.Message
	err := transaction.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userID, peerID, peerID, userID).
		Order("created_at DESC").
		First(&message).Error
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepo) MarkReadFrom(ctx context.Context, tx *gorm.DB, senderID, recipientID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", senderID, recipientID, false).
		Update("is_read", true).Error
}

func (r *messageRepo) CountUnreadFrom(ctx context.Context, tx *gorm.DB, senderID, recipientID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Message{}).
		Where("sender_id = ? AND recipient_id = ? AND is_read = ?", senderID, recipientID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Partners returns every user the given user has exchanged messages with.
func (r *messageRepo) Partners(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var sent []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Message{}).
		Where("sender_id = ?", userID).
		Distinct().
		Pluck("recipient_id", &sent).Error; err != nil {
		return nil, err
	}
	var received []uuid.UUID
	if err := transaction.WithContext(ctx).
		Model(&types.Message{}).
		Where("recipient_id = ?", userID).
		Distinct().
		Pluck("sender_id", &received).Error; err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(sent)+len(received))
	partners := make([]uuid.UUID, 0, len(sent)+len(received))
	for _, id := range append(sent, received...) {
		if id == userID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		partners = append(partners, id)
	}
	return partners, nil
}
