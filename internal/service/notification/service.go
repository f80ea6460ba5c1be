// Package notification writes and updates entries of a user's notification feed.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

type notificationRepo interface {
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

// Service manages notifications.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	now           func() time.Time
}

// NewService creates a new notification service.
func NewService(logger *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
		now:           time.Now,
	}
}

// Send records a notification for recipient. The acting user (from ctx) is
// never notified about their own actions. Failures are logged and swallowed
// so that the interaction which triggered the notification still succeeds.
func (s *Service) Send(ctx context.Context, recipient uuid.UUID, kind domain.NotificationType, message string, postID *uuid.UUID) {
	if actor, ok := ctxutil.UserIDFromCtx(ctx); ok && actor == recipient {
		return
	}

	n := domain.Notification{
		ID:        uuid.New(),
		UserID:    recipient,
		Type:      kind,
		Message:   message,
		PostID:    postID,
		CreatedAt: s.now().UTC(),
	}

	if _, err := s.notifications.Create(ctx, n); err != nil {
		s.log.ErrorContext(ctx, "notification write failed",
			slog.String("recipient_id", recipient.String()),
			slog.String("type", kind.String()),
			slog.String("error", err.Error()))
	}
}

// MarkRead marks one of the caller's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}
