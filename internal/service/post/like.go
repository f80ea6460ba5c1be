package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

// Like adds the caller to the post's like set and returns the number of likes.
// Liking twice is a no-op.
func (s *Service) Like(ctx context.Context, postID uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.posts.AddLike(ctx, postID, userID)
	if err != nil {
		return 0, fmt.Errorf("post.Like: %w", err)
	}
	return n, nil
}
