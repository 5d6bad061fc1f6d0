package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/api/http/middleware"
	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/service"
)

// HierarchyService defines floor/room tree operations.
type HierarchyService interface {
	AddFloor(ctx context.Context, userID uuid.UUID, name, dimensions string) error
	AddRoom(ctx context.Context, userID uuid.UUID, floorName string, params service.AddRoomParams) error
	List(ctx context.Context, userID uuid.UUID) (model.Hierarchy, error)
	GetRoom(ctx context.Context, userID uuid.UUID, floorName, roomName string) (model.Room, error)
}

// Hierarchy handles HTTP endpoints for the floor/room tree.
type Hierarchy struct {
	hierarchyService HierarchyService
	contextManager   model.ContextManager
	logger           *logger.Logger
}

// NewHierarchy creates a new Hierarchy handler.
func NewHierarchy(hierarchyService HierarchyService, contextManager model.ContextManager, logger *logger.Logger) *Hierarchy {
	return &Hierarchy{
		hierarchyService: hierarchyService,
		contextManager:   contextManager,
		logger:           logger,
	}
}

type addFloorRequest struct {
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
}

type addRoomRequest struct {
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
	Style      string `json:"style"`
	Color      string `json:"color"`
	Furniture  string `json:"furniture"`
	Image      string `json:"image"`
}

// List handles GET /api/hierarchy.
func (h *Hierarchy) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	hierarchy, err := h.hierarchyService.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("Hierarchy handler: list failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, hierarchy)
}

// AddFloor handles POST /api/hierarchy/floors.
func (h *Hierarchy) AddFloor(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	var req addFloorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := h.hierarchyService.AddFloor(r.Context(), userID, req.Name, req.Dimensions); err != nil {
		h.logger.Error("Hierarchy handler: add floor failed",
			"user_id", userID,
			"floor", req.Name,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Hierarchy handler: floor added",
		"user_id", userID,
		"floor", req.Name)

	w.WriteHeader(http.StatusCreated)
}

// AddRoom handles POST /api/hierarchy/floors/{floor}/rooms.
func (h *Hierarchy) AddRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	floorName := r.PathValue("floor")

	var req addRoomRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	params := service.AddRoomParams{
		Name:       req.Name,
		Dimensions: req.Dimensions,
		Style:      req.Style,
		Color:      req.Color,
		Furniture:  req.Furniture,
		Image:      req.Image,
	}

	if err := h.hierarchyService.AddRoom(r.Context(), userID, floorName, params); err != nil {
		h.logger.Error("Hierarchy handler: add room failed",
			"user_id", userID,
			"floor", floorName,
			"room", req.Name,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Hierarchy handler: room added",
		"user_id", userID,
		"floor", floorName,
		"room", req.Name)

	w.WriteHeader(http.StatusCreated)
}

// GetRoom handles GET /api/hierarchy/floors/{floor}/rooms/{room}.
func (h *Hierarchy) GetRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "missing user ID")
		return
	}

	room, err := h.hierarchyService.GetRoom(r.Context(), userID, r.PathValue("floor"), r.PathValue("room"))
	if err != nil {
		h.logger.Error("Hierarchy handler: get room failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, room)
}
