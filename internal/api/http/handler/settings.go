package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/api/http/middleware"
	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// SettingsService defines per-user settings operations.
type SettingsService interface {
	Get(ctx context.Context, userID uuid.UUID) (model.Settings, error)
	Save(ctx context.Context, userID uuid.UUID, settings model.Settings) error
}

// Settings handles HTTP endpoints for user settings.
type Settings struct {
	settingsService SettingsService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewSettings creates a new Settings handler.
func NewSettings(settingsService SettingsService, contextManager model.ContextManager, logger *logger.Logger) *Settings {
	return &Settings{
		settingsService: settingsService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Get handles GET /api/settings.
func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	settings, err := h.settingsService.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("Settings handler: get failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, settings)
}

// Save handles PUT /api/settings.
func (h *Settings) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var settings model.Settings
	if err := middleware.ParseJSONBody(r, &settings); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.settingsService.Save(r.Context(), userID, settings); err != nil {
		h.logger.Error("Settings handler: save failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Settings handler: settings saved",
		"user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, settings)
}
