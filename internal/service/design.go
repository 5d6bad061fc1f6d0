package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/prompt"
)

// InteriorParams selects the room to render. Either Floor/Room reference a
// stored room, or the attribute fields are given inline, mirroring the form
// the UI offers before a room is saved.
type InteriorParams struct {
	Floor     string
	Room      string
	RoomName  string
	Style     string
	Color     string
	Furniture string
}

// Design composes prompts and forwards them to the generation API. Upstream
// responses come back as raw JSON for verbatim display.
type Design struct {
	hierarchy *Hierarchy
	client    model.GenerationClient
	logger    *logger.Logger
}

// NewDesign creates a new Design service.
func NewDesign(hierarchy *Hierarchy, client model.GenerationClient, logger *logger.Logger) *Design {
	return &Design{
		hierarchy: hierarchy,
		client:    client,
		logger:    logger,
	}
}

// Interior renders an interior view of a room.
func (s *Design) Interior(ctx context.Context, userID uuid.UUID, params InteriorParams) (json.RawMessage, error) {
	roomName := params.RoomName
	style := params.Style
	color := params.Color
	furniture := params.Furniture

	if params.Floor != "" && params.Room != "" {
		room, err := s.hierarchy.GetRoom(ctx, userID, params.Floor, params.Room)
		if err != nil {
			return nil, fmt.Errorf("failed to get room: %w", err)
		}
		roomName = room.Name
		style = room.Style
		color = room.Color
		furniture = room.Furniture
	}

	if roomName == "" {
		return nil, fmt.Errorf("%w: room name is required", model.ErrInvalidInput)
	}

	p := prompt.Interior(style, roomName, color, furniture)

	s.logger.Info("Design service: generating interior",
		"user_id", userID,
		"room", roomName)

	return s.client.GenerateImage(ctx, p)
}

// Plan2D asks the reasoning model for a 2D floor plan from a description.
func (s *Design) Plan2D(ctx context.Context, userID uuid.UUID, description string) (json.RawMessage, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", model.ErrInvalidInput)
	}

	s.logger.Info("Design service: generating 2D plan",
		"user_id", userID)

	return s.client.Reason(ctx, prompt.Plan2D(description))
}

// Render3D renders a 3D view of a stored room.
func (s *Design) Render3D(ctx context.Context, userID uuid.UUID, floorName, roomName string) (json.RawMessage, error) {
	room, err := s.hierarchy.GetRoom(ctx, userID, floorName, roomName)
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	p := prompt.Render3D(room.Style, room.Name, room.Dimensions, room.Color, room.Furniture)

	s.logger.Info("Design service: generating 3D render",
		"user_id", userID,
		"room", room.Name)

	return s.client.GenerateImage(ctx, p)
}

// Exterior renders an exterior view from a description.
func (s *Design) Exterior(ctx context.Context, userID uuid.UUID, description string) (json.RawMessage, error) {
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", model.ErrInvalidInput)
	}

	s.logger.Info("Design service: generating exterior",
		"user_id", userID)

	return s.client.GenerateImage(ctx, prompt.Exterior(description))
}
