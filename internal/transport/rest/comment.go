package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
	"github.com/heartmarshall/teamhub-backend/internal/service/thread"
)

type commentService interface {
	CreateComment(ctx context.Context, postID uuid.UUID, input thread.CommentInput) (*domain.Comment, error)
	CreateReply(ctx context.Context, parentID uuid.UUID, input thread.CommentInput) (*domain.Comment, error)
	Upvote(ctx context.Context, commentID uuid.UUID) (int, error)
}

// CommentHandler serves comment thread endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type commentRequest struct {
	Content string `json:"content"`
	Type    string `json:"type"`
}

func (req commentRequest) input() thread.CommentInput {
	return thread.CommentInput{Content: req.Content, Type: domain.CommentType(req.Type)}
}

// Create handles POST /posts/{id}/comments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), postID, req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// Reply handles POST /comments/{id}/replies.
func (h *CommentHandler) Reply(w http.ResponseWriter, r *http.Request) {
	parentID, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req commentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateReply(r.Context(), parentID, req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// Upvote handles POST /comments/{id}/upvote. Repeat upvotes by the same user
// return the unchanged count.
func (h *CommentHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	upvotes, err := h.svc.Upvote(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"upvotes": upvotes})
}
