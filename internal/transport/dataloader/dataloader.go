// Package dataloader provides per-request DataLoaders that batch author
// lookups made while resolving posts and comment threads into single SQL calls.
// DataLoaders call repositories directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	User userRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	// AuthorByID yields nil for users that do not exist.
	AuthorByID *dataloader.Loader[uuid.UUID, *domain.Author]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		AuthorByID: newLoader(newAuthorsBatchFn(repos.User)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
func FromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

func newAuthorsBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.Author] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Author] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.Author], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.Author]{Error: err}
			}
			return results
		}

		byID := make(map[uuid.UUID]*domain.Author, len(users))
		for i := range users {
			a := users[i].Author()
			byID[a.ID] = &a
		}

		results := make([]*dataloader.Result[*domain.Author], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Author]{Data: byID[key]}
		}
		return results
	}
}
