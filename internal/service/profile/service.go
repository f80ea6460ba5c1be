// Package profile composes a user's profile view from the user record,
// badge counters and notification feed.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Notification, error)
}

// Service builds profile views.
type Service struct {
	log               *slog.Logger
	users             userRepo
	notifications     notificationRepo
	notificationLimit int
}

// NewService creates a new profile service. notificationLimit caps the number
// of notifications included in a profile.
func NewService(logger *slog.Logger, users userRepo, notifications notificationRepo, notificationLimit int) *Service {
	return &Service{
		log:               logger.With("service", "profile"),
		users:             users,
		notifications:     notifications,
		notificationLimit: notificationLimit,
	}
}

// Get returns the caller's profile: user record, computed badges and the
// newest notifications first. Nothing is written.
func (s *Service) Get(ctx context.Context) (*domain.ProfileView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	notifications, err := s.notifications.ListByUser(ctx, userID, s.notificationLimit)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	return &domain.ProfileView{
		User:          *user,
		Badges:        domain.ComputeBadges(user.BadgesCount),
		Notifications: notifications,
	}, nil
}
