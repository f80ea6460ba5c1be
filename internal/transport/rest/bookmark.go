package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type bookmarkService interface {
	Add(ctx context.Context, postID uuid.UUID) error
	List(ctx context.Context) ([]domain.PostView, error)
}

// BookmarkHandler serves the caller's bookmark set.
type BookmarkHandler struct {
	svc bookmarkService
	log *slog.Logger
}

func NewBookmarkHandler(svc bookmarkService, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, log: logger.With("handler", "bookmark")}
}

type bookmarkRequest struct {
	PostID string `json:"postId"`
}

// Add handles POST /bookmark. Repeating the call is a no-op.
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	raw := strings.TrimSpace(req.PostID)
	if raw == "" {
		handleError(w, r, h.log, domain.NewValidationError("postId", "required"))
		return
	}
	postID, err := uuid.Parse(raw)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("postId", "must be a valid id"))
		return
	}

	if err := h.svc.Add(r.Context(), postID); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// List handles GET /bookmarks.
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPostViewsResponse(views))
}
