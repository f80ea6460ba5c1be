// Package thread owns the comment graph of posts: it resolves reply trees,
// records new comments and replies, and handles upvotes.
package thread

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	AppendReply(ctx context.Context, parentID, childID uuid.UUID) error
	Upvote(ctx context.Context, commentID, userID uuid.UUID) (int, bool, error)
}

type postRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	AppendComment(ctx context.Context, postID, commentID uuid.UUID) error
}

type authorLoader interface {
	LoadAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Author, error)
}

type notifier interface {
	Send(ctx context.Context, recipient uuid.UUID, kind domain.NotificationType, message string, postID *uuid.UUID)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements comment graph operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	posts    postRepo
	authors  authorLoader
	notify   notifier
	tx       txManager
	maxDepth int
}

// NewService creates a new thread service. maxDepth bounds every resolved
// thread; root comments are at depth 1.
func NewService(
	logger *slog.Logger,
	comments commentRepo,
	posts postRepo,
	authors authorLoader,
	notify notifier,
	tx txManager,
	maxDepth int,
) *Service {
	return &Service{
		log:      logger.With("service", "thread"),
		comments: comments,
		posts:    posts,
		authors:  authors,
		notify:   notify,
		tx:       tx,
		maxDepth: maxDepth,
	}
}
