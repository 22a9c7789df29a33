package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pulsefeed/pulsefeed-core/internal/logger"
	"github.com/pulsefeed/pulsefeed-core/internal/repos"
	"github.com/pulsefeed/pulsefeed-core/internal/types"
)

const notificationPageSize = 10

type NotificationService interface {
	// Recent returns the newest notifications and marks the whole inbox
	// read, mirroring the notifications page.
	Recent(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationService struct {
	log           *logger.Logger
	notifications repos.NotificationRepo
}

func NewNotificationService(baseLog *logger.Logger, notifications repos.NotificationRepo) NotificationService {
	return &notificationService{
		log:           baseLog.With("service", "NotificationService"),
		notifications: notifications,
	}
}

func (s *notificationService) Recent(ctx context.Context, userID uuid.UUID) ([]*types.Notification, error) {
	items, err := s.notifications.Recent(ctx, nil, userID, notificationPageSize)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	if err := s.notifications.MarkAllRead(ctx, nil, userID); err != nil {
		s.log.Error("mark notifications read failed", "user_id", userID, "error", err)
	}
	return items, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifications.CountUnread(ctx, nil, userID)
}
