// Package post implements publishing, reading and liking posts.
package post

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type postRepo interface {
	Create(ctx context.Context, p domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AddLike(ctx context.Context, postID, userID uuid.UUID) (int, error)
	FindManyByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Post, error)
}

type authorLoader interface {
	LoadAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Author, error)
}

type threadResolver interface {
	ResolveRoots(ctx context.Context, roots []uuid.UUID) ([]domain.ResolvedComment, error)
}

// Service implements post operations.
type Service struct {
	log     *slog.Logger
	posts   postRepo
	authors authorLoader
	threads threadResolver
}

// NewService creates a new post service.
func NewService(
	logger *slog.Logger,
	posts postRepo,
	authors authorLoader,
	threads threadResolver,
) *Service {
	return &Service{
		log:     logger.With("service", "post"),
		posts:   posts,
		authors: authors,
		threads: threads,
	}
}
