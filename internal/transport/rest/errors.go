package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/teamhub-backend/internal/domain"
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields"`
}

// handleError maps a service error to an HTTP response. Credential failure
// details never reach the client.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		gerr *domain.GraphError
	)
	switch {
	case errors.As(err, &verr):
		fields := make([]fieldErrorResponse, len(verr.Errors))
		for i, fe := range verr.Errors {
			fields[i] = fieldErrorResponse{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{Error: verr.Error(), Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		// Rejected by a storage constraint rather than by input validation.
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.As(err, &gerr):
		log.ErrorContext(r.Context(), "comment graph integrity fault",
			slog.String("kind", string(gerr.Kind)),
			slog.String("comment_id", gerr.CommentID.String()),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
