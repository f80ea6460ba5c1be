package thread

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

// CreateComment adds a top-level comment to a post. The comment row and the
// post's comment list are written in one transaction.
func (s *Service) CreateComment(ctx context.Context, postID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created *domain.Comment
		post    *domain.Post
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		post, err = s.posts.GetByID(txCtx, postID)
		if err != nil {
			return fmt.Errorf("get post: %w", err)
		}

		created, err = s.comments.Create(txCtx, newComment(postID, userID, input))
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		if err := s.posts.AppendComment(txCtx, postID, created.ID); err != nil {
			return fmt.Errorf("append comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("thread.CreateComment: %w", err)
	}

	s.notify.Send(ctx, post.AuthorID, domain.NotificationComment,
		fmt.Sprintf("New comment on %q", post.Title), &post.ID)

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", created.ID.String()),
		slog.String("post_id", postID.String()))

	return created, nil
}

// CreateReply adds a reply under an existing comment. The reply belongs to the
// parent's post; the reply row and the parent's reply list are written in one
// transaction.
func (s *Service) CreateReply(ctx context.Context, parentID uuid.UUID, input CommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created *domain.Comment
		parent  *domain.Comment
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		parent, err = s.comments.GetByID(txCtx, parentID)
		if err != nil {
			return fmt.Errorf("get parent comment: %w", err)
		}

		created, err = s.comments.Create(txCtx, newComment(parent.PostID, userID, input))
		if err != nil {
			return fmt.Errorf("create reply: %w", err)
		}

		if err := s.comments.AppendReply(txCtx, parentID, created.ID); err != nil {
			return fmt.Errorf("append reply: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("thread.CreateReply: %w", err)
	}

	s.notify.Send(ctx, parent.AuthorID, domain.NotificationReply,
		s.postMessage(ctx, "Someone replied to your comment", parent.PostID), &parent.PostID)

	s.log.InfoContext(ctx, "reply created",
		slog.String("comment_id", created.ID.String()),
		slog.String("parent_id", parentID.String()))

	return created, nil
}

func newComment(postID, authorID uuid.UUID, input CommentInput) domain.Comment {
	return domain.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   input.Content,
		Type:      input.Type,
		Upvotes:   []uuid.UUID{},
		Replies:   []uuid.UUID{},
		CreatedAt: time.Now().UTC(),
	}
}

// postMessage appends the post title to prefix when the post can be read.
func (s *Service) postMessage(ctx context.Context, prefix string, postID uuid.UUID) string {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return prefix
	}
	return fmt.Sprintf("%s on %q", prefix, post.Title)
}
