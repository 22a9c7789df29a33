package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

// ConversationSummary is one row of the inbox overview: the partner, the
// latest message either way and how many of theirs are still unread.
type ConversationSummary struct {
	PartnerID   uuid.UUID      `json:"partner_id"`
	LastMessage *types.Message `json:"last_message"`
	UnreadCount int64          `json:"unread_count"`
}

type MessageService interface {
	Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (*types.Message, error)
	// Conversation returns the full thread oldest-first and marks the
	// partner's messages read.
	Conversation(ctx context.Context, userID, partnerID uuid.UUID) ([]*types.Message, error)
	// Overview lists every conversation partner, newest activity first.
	Overview(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error)
}

type messageService struct {
	log      *logger.Logger
	messages repos.MessageRepo
	users    repos.UserRepo
}

func NewMessageService(baseLog *logger.Logger, messages repos.MessageRepo, users repos.UserRepo) MessageService {
	return &messageService{
		log:      baseLog.With("service", "MessageService"),
		messages: messages,
		users:    users,
	}
}

func (s *messageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (*types.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyContent
	}
	if senderID == recipientID {
		return nil, fmt.Errorf("cannot message yourself")
	}
	if _, err := s.users.GetByID(ctx, nil, recipientID); err != nil {
		return nil, fmt.Errorf("load recipient: %w", err)
	}

	message := &types.Message{SenderID: senderID, RecipientID: recipientID, Content: body}
	if err := s.messages.Create(ctx, nil, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *messageService) Conversation(ctx context.Context, userID, partnerID uuid.UUID) ([]*types.Message, error) {
	thread, err := s.messages.Between(ctx, nil, userID, partnerID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if err := s.messages.MarkReadFrom(ctx, nil, partnerID, userID); err != nil {
		s.log.Error("mark conversation read failed", "user_id", userID, "error", err)
	}
	return thread, nil
}

func (s *messageService) Overview(ctx context.Context, userID uuid.UUID) ([]*ConversationSummary, error) {
	partners, err := s.messages.Partners(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}

	summaries := make([]*ConversationSummary, 0, len(partners))
	for _, partnerID := range partners {
		last, err := s.messages.LastBetween(ctx, nil, userID, partnerID)
		if err != nil {
			return nil, fmt.Errorf("load last message: %w", err)
		}
		if last == nil {
			continue
		}
		unread, err := s.messages.CountUnreadFrom(ctx, nil, partnerID, userID)
		if err != nil {
			return nil, fmt.Errorf("count unread: %w", err)
		}
		summaries = append(summaries, &ConversationSummary{
			PartnerID:   partnerID,
			LastMessage: last,
			UnreadCount: unread,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.CreatedAt.After(summaries[j].LastMessage.CreatedAt)
	})
	return summaries, nil
}
