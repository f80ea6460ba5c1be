package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type profileService interface {
	Get(ctx context.Context) (*domain.ProfileView, error)
}

// ProfileHandler serves the caller's profile.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(view))
}
