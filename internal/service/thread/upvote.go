package thread

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

// Upvote adds the caller to the comment's upvote set and returns the number of
// upvotes. Repeating the call leaves the set unchanged. The comment author is
// notified only when the set actually changed.
func (s *Service) Upvote(ctx context.Context, commentID uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return 0, fmt.Errorf("thread.Upvote: %w", err)
	}

	count, changed, err := s.comments.Upvote(ctx, commentID, userID)
	if err != nil {
		return 0, fmt.Errorf("thread.Upvote: %w", err)
	}

	if changed {
		s.notify.Send(ctx, comment.AuthorID, domain.NotificationUpvote,
			s.postMessage(ctx, "Someone upvoted your comment", comment.PostID), &comment.PostID)
	}

	return count, nil
}
