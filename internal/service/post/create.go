package post

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/pkg/ctxutil"
)

// Create publishes a new post authored by the caller.
func (s *Service) Create(ctx context.Context, input CreatePostInput) (*domain.Post, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	images := make([]domain.PostImage, len(input.Images))
	for i, img := range input.Images {
		uploaded := now
		if img.UploadedAt != nil {
			uploaded = img.UploadedAt.UTC()
		}
		images[i] = domain.PostImage{ID: img.ID, URL: img.URL, UploadedAt: uploaded}
	}

	post, err := s.posts.Create(ctx, domain.Post{
		ID:         uuid.New(),
		Title:      input.Title,
		Content:    input.Content,
		Tags:       input.Tags,
		Categories: input.Categories,
		Images:     images,
		AuthorID:   userID,
		Likes:      []uuid.UUID{},
		Comments:   []uuid.UUID{},
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("post.Create: %w", err)
	}

	s.log.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID.String()),
		slog.String("user_id", userID.String()))

	return post, nil
}
