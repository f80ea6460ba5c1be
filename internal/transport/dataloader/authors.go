package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

// Authors resolves author projections through the request's DataLoader.
// Outside of an HTTP request (no loaders in context) a throwaway loader set
// is used so callers behave the same.
type Authors struct {
	repos *Repos
}

// NewAuthors creates an author resolver over the given repositories.
func NewAuthors(repos *Repos) *Authors {
	return &Authors{repos: repos}
}

// LoadAuthors returns the authors found among ids. Unknown ids are absent from the map.
func (a *Authors) LoadAuthors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Author, error) {
	out := make(map[uuid.UUID]*domain.Author, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	loaders, ok := FromContext(ctx)
	if !ok {
		loaders = NewLoaders(a.repos)
	}

	authors, errs := loaders.AuthorByID.LoadMany(ctx, ids)()
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("load author %s: %w", id, errs[i])
		}
		if authors[i] != nil {
			out[id] = authors[i]
		}
	}
	return out, nil
}
