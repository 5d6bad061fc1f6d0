// Package handler implements the HTTP JSON endpoints.
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atelier-ai/atelier-server/internal/api/http/middleware"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// handleError translates service errors into HTTP responses. Upstream API
// failures are relayed with the raw upstream body so the client can render
// the provider's own error message.
func handleError(w http.ResponseWriter, err error) {
	var upstreamErr *model.UpstreamError
	if errors.As(err, &upstreamErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		if _, writeErr := w.Write(upstreamErr.Body); writeErr != nil {
			slog.Error("failed to write upstream error body", "error", writeErr)
		}
		return
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, model.ErrDuplicateName):
		middleware.ErrorResponse(w, http.StatusConflict, "name already exists")
	case errors.Is(err, model.ErrUsernameTaken):
		middleware.ErrorResponse(w, http.StatusConflict, "username already taken")
	case errors.Is(err, model.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrInvalidToken):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, model.ErrInvalidInput):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
