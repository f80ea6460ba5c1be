package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

// Get returns a post with its author and comment thread. A read counts as a
// view only once the whole view has been resolved.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.PostView, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}

	authors, err := s.authors.LoadAuthors(ctx, []uuid.UUID{post.AuthorID})
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}
	author, ok := authors[post.AuthorID]
	if !ok {
		return nil, fmt.Errorf("post.Get: author of post %s: %w", id, domain.ErrNotFound)
	}

	view, err := s.view(ctx, *post, *author)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}

	viewed, err := s.posts.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}
	view.Views = viewed.Views
	return view, nil
}

// ResolveMany returns resolved views of the posts among ids, in the order of
// ids. Posts that no longer exist, or whose author no longer exists, are skipped.
func (s *Service) ResolveMany(ctx context.Context, ids []uuid.UUID) ([]domain.PostView, error) {
	posts, err := s.posts.FindManyByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("post.ResolveMany: %w", err)
	}

	authorIDs := make([]uuid.UUID, len(posts))
	for i, p := range posts {
		authorIDs[i] = p.AuthorID
	}
	authors, err := s.authors.LoadAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("post.ResolveMany: %w", err)
	}

	views := make([]domain.PostView, 0, len(posts))
	for _, p := range posts {
		author, ok := authors[p.AuthorID]
		if !ok {
			continue
		}
		view, err := s.view(ctx, p, *author)
		if err != nil {
			return nil, fmt.Errorf("post.ResolveMany: %w", err)
		}
		views = append(views, *view)
	}
	return views, nil
}

func (s *Service) view(ctx context.Context, p domain.Post, author domain.Author) (*domain.PostView, error) {
	comments, err := s.threads.ResolveRoots(ctx, p.Comments)
	if err != nil {
		return nil, fmt.Errorf("resolve thread of post %s: %w", p.ID, err)
	}
	return &domain.PostView{Post: p, Author: author, Comments: comments}, nil
}
