package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/api/http/middleware"
	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/service"
)

// DesignService defines generation operations.
type DesignService interface {
	Interior(ctx context.Context, userID uuid.UUID, params service.InteriorParams) (json.RawMessage, error)
	Plan2D(ctx context.Context, userID uuid.UUID, description string) (json.RawMessage, error)
	Render3D(ctx context.Context, userID uuid.UUID, floorName, roomName string) (json.RawMessage, error)
	Exterior(ctx context.Context, userID uuid.UUID, description string) (json.RawMessage, error)
}

// Design handles HTTP endpoints for generation requests. Successful upstream
// responses are relayed verbatim.
type Design struct {
	designService  DesignService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewDesign creates a new Design handler.
func NewDesign(designService DesignService, contextManager model.ContextManager, logger *logger.Logger) *Design {
	return &Design{
		designService:  designService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type interiorRequest struct {
	Floor     string `json:"floor"`
	Room      string `json:"room"`
	RoomName  string `json:"room_name"`
	Style     string `json:"style"`
	Color     string `json:"color"`
	Furniture string `json:"furniture"`
}

type roomRefRequest struct {
	Floor string `json:"floor"`
	Room  string `json:"room"`
}

type descriptionRequest struct {
	Description string `json:"description"`
}

// Interior handles POST /api/design/interior.
func (h *Design) Interior(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var req interiorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	raw, err := h.designService.Interior(r.Context(), userID, service.InteriorParams{
		Floor:     req.Floor,
		Room:      req.Room,
		RoomName:  req.RoomName,
		Style:     req.Style,
		Color:     req.Color,
		Furniture: req.Furniture,
	})
	if err != nil {
		h.logger.Error("Design handler: interior generation failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeRaw(w, raw)
}

// Plan handles POST /api/design/plan.
func (h *Design) Plan(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var req descriptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	raw, err := h.designService.Plan2D(r.Context(), userID, req.Description)
	if err != nil {
		h.logger.Error("Design handler: plan generation failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeRaw(w, raw)
}

// Render3D handles POST /api/design/render3d.
func (h *Design) Render3D(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var req roomRefRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	raw, err := h.designService.Render3D(r.Context(), userID, req.Floor, req.Room)
	if err != nil {
		h.logger.Error("Design handler: 3D render failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeRaw(w, raw)
}

// Exterior handles POST /api/design/exterior.
func (h *Design) Exterior(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var req descriptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	raw, err := h.designService.Exterior(r.Context(), userID, req.Description)
	if err != nil {
		h.logger.Error("Design handler: exterior generation failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeRaw(w, raw)
}

// writeRaw relays an upstream JSON payload without re-encoding it.
func writeRaw(w http.ResponseWriter, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		slog.Error("failed to write upstream response body", "error", err)
	}
}
