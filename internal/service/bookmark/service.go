// Package bookmark manages a user's bookmarked posts.
package bookmark

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
	AddBookmark(ctx context.Context, userID, postID uuid.UUID) ([]uuid.UUID, error)
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
}

type postResolver interface {
	ResolveMany(ctx context.Context, ids []uuid.UUID) ([]domain.PostView, error)
}

// Service implements bookmark operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	posts postRepo
	views postResolver
}

// NewService creates a new bookmark service.
func NewService(logger *slog.Logger, users userRepo, posts postRepo, views postResolver) *Service {
	return &Service{
		log:   logger.With("service", "bookmark"),
		users: users,
		posts: posts,
		views: views,
	}
}

// Add bookmarks a post for the caller. Bookmarking the same post again is a no-op.
// Returns ErrNotFound if the post or the caller's user record does not exist.
func (s *Service) Add(ctx context.Context, postID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return fmt.Errorf("bookmark.Add: %w", err)
	}

	bookmarks, err := s.users.AddBookmark(ctx, userID, postID)
	if err != nil {
		return fmt.Errorf("bookmark.Add: %w", err)
	}

	s.log.DebugContext(ctx, "post bookmarked",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
		slog.Int("bookmarks", len(bookmarks)))

	return nil
}

// List returns the caller's bookmarked posts in bookmark order, each with its
// author and comment thread. Bookmarks pointing at missing posts are skipped.
func (s *Service) List(ctx context.Context) ([]domain.PostView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bookmark.List: %w", err)
	}

	views, err := s.views.ResolveMany(ctx, user.Bookmarks)
	if err != nil {
		return nil, fmt.Errorf("bookmark.List: %w", err)
	}
	return views, nil
}
