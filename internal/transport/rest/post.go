package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/internal/service/post"
)

type postService interface {
	Create(ctx context.Context, input post.CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.PostView, error)
	Like(ctx context.Context, postID uuid.UUID) (int, error)
}

// PostHandler serves post endpoints.
type PostHandler struct {
	svc postService
	log *slog.Logger
}

func NewPostHandler(svc postService, logger *slog.Logger) *PostHandler {
	return &PostHandler{svc: svc, log: logger.With("handler", "post")}
}

type imageRequest struct {
	ID         string     `json:"id"`
	URL        string     `json:"url"`
	UploadedAt *time.Time `json:"uploadedAt"`
}

type createPostRequest struct {
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Tags       []string       `json:"tags"`
	Categories []string       `json:"categories"`
	Images     []imageRequest `json:"images"`
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	images := make([]post.ImageInput, len(req.Images))
	for i, img := range req.Images {
		images[i] = post.ImageInput{ID: img.ID, URL: img.URL, UploadedAt: img.UploadedAt}
	}

	created, err := h.svc.Create(r.Context(), post.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		Tags:       req.Tags,
		Categories: req.Categories,
		Images:     images,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostResponse(created))
}

// Get handles GET /posts/{id}. Every read counts as a view.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostViewResponse(*view))
}

// Like handles POST /posts/{id}/like.
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	likes, err := h.svc.Like(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": likes})
}
