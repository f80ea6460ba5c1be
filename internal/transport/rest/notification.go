package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

type notificationService interface {
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.MarkRead(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
