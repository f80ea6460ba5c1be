package thread

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

// ResolveThread returns the fully expanded comment tree of a post, roots in
// the post's order and replies in insertion order at every level.
func (s *Service) ResolveThread(ctx context.Context, postID uuid.UUID) ([]domain.ResolvedComment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("thread.ResolveThread: %w", err)
	}

	resolved, err := s.ResolveRoots(ctx, post.Comments)
	if err != nil {
		return nil, fmt.Errorf("thread.ResolveThread: %w", err)
	}
	return resolved, nil
}

// ResolveRoots expands the given top-level comment ids.
//
// Comments are loaded breadth first, one batched query per depth level, into
// an arena keyed by id. The tree is then assembled depth first from the arena.
// Levels beyond maxDepth are neither loaded nor returned; the last level is
// marked Truncated when it had replies. A reply id that points back at a
// comment on its own ancestor path fails with *domain.GraphError.
func (s *Service) ResolveRoots(ctx context.Context, roots []uuid.UUID) ([]domain.ResolvedComment, error) {
	arena, err := s.loadArena(ctx, roots)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uuid.UUID, 0, len(arena))
	seen := make(map[uuid.UUID]struct{}, len(arena))
	for _, c := range arena {
		if _, ok := seen[c.AuthorID]; ok {
			continue
		}
		seen[c.AuthorID] = struct{}{}
		authorIDs = append(authorIDs, c.AuthorID)
	}

	authors, err := s.authors.LoadAuthors(ctx, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	b := &treeBuilder{
		arena:    arena,
		authors:  authors,
		maxDepth: s.maxDepth,
		path:     make(map[uuid.UUID]struct{}),
	}

	out, err := b.children(roots, 1)
	if err != nil {
		var gerr *domain.GraphError
		if errors.As(err, &gerr) {
			s.log.ErrorContext(ctx, "comment graph integrity fault",
				slog.String("kind", string(gerr.Kind)),
				slog.String("comment_id", gerr.CommentID.String()))
		}
		return nil, err
	}
	return out, nil
}

func (s *Service) loadArena(ctx context.Context, roots []uuid.UUID) (map[uuid.UUID]domain.Comment, error) {
	arena := make(map[uuid.UUID]domain.Comment)
	requested := make(map[uuid.UUID]struct{})

	frontier := roots
	for depth := 1; depth <= s.maxDepth && len(frontier) > 0; depth++ {
		batch := make([]uuid.UUID, 0, len(frontier))
		for _, id := range frontier {
			if _, ok := requested[id]; ok {
				continue
			}
			requested[id] = struct{}{}
			batch = append(batch, id)
		}
		if len(batch) == 0 {
			break
		}

		comments, err := s.comments.GetByIDs(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("load comments at depth %d: %w", depth, err)
		}

		var next []uuid.UUID
		for _, c := range comments {
			arena[c.ID] = c
			if depth < s.maxDepth {
				next = append(next, c.Replies...)
			}
		}
		frontier = next
	}

	return arena, nil
}

type treeBuilder struct {
	arena    map[uuid.UUID]domain.Comment
	authors  map[uuid.UUID]*domain.Author
	maxDepth int
	path     map[uuid.UUID]struct{}
}

func (b *treeBuilder) children(ids []uuid.UUID, depth int) ([]domain.ResolvedComment, error) {
	out := make([]domain.ResolvedComment, 0, len(ids))
	for _, id := range ids {
		if _, onPath := b.path[id]; onPath {
			return nil, &domain.GraphError{Kind: domain.GraphCycle, CommentID: id}
		}

		c, ok := b.arena[id]
		if !ok {
			continue
		}

		node, err := b.node(c, depth)
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *treeBuilder) node(c domain.Comment, depth int) (domain.ResolvedComment, error) {
	node := domain.ResolvedComment{
		ID:        c.ID,
		Author:    b.authors[c.AuthorID],
		Content:   c.Content,
		Type:      c.Type,
		Upvotes:   c.Upvotes,
		Replies:   []domain.ResolvedComment{},
		CreatedAt: c.CreatedAt,
	}

	b.path[c.ID] = struct{}{}
	defer delete(b.path, c.ID)

	if depth >= b.maxDepth {
		// Replies are not expanded here, but a back edge is still a fault.
		for _, rid := range c.Replies {
			if _, onPath := b.path[rid]; onPath {
				return node, &domain.GraphError{Kind: domain.GraphCycle, CommentID: rid}
			}
		}
		node.Truncated = len(c.Replies) > 0
		return node, nil
	}

	replies, err := b.children(c.Replies, depth+1)
	if err != nil {
		return node, err
	}
	node.Replies = replies
	return node, nil
}
