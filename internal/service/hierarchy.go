package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// AddRoomParams contains parameters to create a room. Image, when present,
// is the base64-encoded reference upload.
type AddRoomParams struct {
	Name       string
	Dimensions string
	Style      string
	Color      string
	Furniture  string
	Image      string
}

// Hierarchy manages the per-user floor/room tree. When blob storage is
// configured, reference images are offloaded there and the room keeps only
// the object key; otherwise the base64 payload stays inline in the document.
type Hierarchy struct {
	hierarchyStore model.HierarchyStore
	userStore      model.UserStore
	storage        model.Storage
	logger         *logger.Logger
}

// NewHierarchy creates a new Hierarchy service. storage may be nil.
func NewHierarchy(
	hierarchyStore model.HierarchyStore,
	userStore model.UserStore,
	storage model.Storage,
	logger *logger.Logger,
) *Hierarchy {
	return &Hierarchy{
		hierarchyStore: hierarchyStore,
		userStore:      userStore,
		storage:        storage,
		logger:         logger,
	}
}

// AddFloor inserts a new named floor for the user.
func (s *Hierarchy) AddFloor(ctx context.Context, userID uuid.UUID, name, dimensions string) error {
	if name == "" {
		return fmt.Errorf("%w: floor name is required", model.ErrInvalidInput)
	}

	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	floor := model.Floor{
		Name:       name,
		Dimensions: dimensions,
		Rooms:      []model.Room{},
		CreatedAt:  time.Now(),
	}

	if err := s.hierarchyStore.AddFloor(ctx, userID, floor); err != nil {
		return fmt.Errorf("failed to add floor: %w", err)
	}

	s.logger.Info("Hierarchy service: floor added",
		"user_id", userID,
		"floor", name)

	return nil
}

// AddRoom inserts a new room under the named floor. The floor must already
// exist; it is never created as a side effect.
func (s *Hierarchy) AddRoom(ctx context.Context, userID uuid.UUID, floorName string, params AddRoomParams) error {
	if params.Name == "" {
		return fmt.Errorf("%w: room name is required", model.ErrInvalidInput)
	}
	if floorName == "" {
		return fmt.Errorf("%w: floor name is required", model.ErrInvalidInput)
	}

	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	room := model.Room{
		Name:       params.Name,
		Dimensions: params.Dimensions,
		Style:      params.Style,
		Color:      params.Color,
		Furniture:  params.Furniture,
		CreatedAt:  time.Now(),
	}

	if params.Image != "" {
		blob, err := base64.StdEncoding.DecodeString(params.Image)
		if err != nil {
			return fmt.Errorf("%w: reference image is not valid base64", model.ErrInvalidInput)
		}

		if s.storage != nil {
			key := fmt.Sprintf("user-%s/room-%s", userID, uuid.New())
			if err := s.storage.Upload(ctx, key, bytes.NewReader(blob)); err != nil {
				return fmt.Errorf("failed to upload reference image: %w", err)
			}
			room.ImageKey = key
		} else {
			room.Image = params.Image
		}
	}

	if err := s.hierarchyStore.AddRoom(ctx, userID, floorName, room); err != nil {
		if room.ImageKey != "" {
			if delErr := s.storage.Delete(ctx, room.ImageKey); delErr != nil {
				s.logger.Error("Hierarchy service: failed to delete orphaned image",
					"key", room.ImageKey,
					"error", delErr.Error())
			}
		}
		return fmt.Errorf("failed to add room: %w", err)
	}

	s.logger.Info("Hierarchy service: room added",
		"user_id", userID,
		"floor", floorName,
		"room", params.Name)

	return nil
}

// List returns the user's full floor/room tree in insertion order.
func (s *Hierarchy) List(ctx context.Context, userID uuid.UUID) (model.Hierarchy, error) {
	hierarchy, err := s.hierarchyStore.List(ctx, userID)
	if err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to list hierarchy: %w", err)
	}

	return hierarchy, nil
}

// GetRoom returns a single room with its reference image resolved to base64
// regardless of where the blob lives.
func (s *Hierarchy) GetRoom(ctx context.Context, userID uuid.UUID, floorName, roomName string) (model.Room, error) {
	hierarchy, err := s.hierarchyStore.List(ctx, userID)
	if err != nil {
		return model.Room{}, fmt.Errorf("failed to list hierarchy: %w", err)
	}

	floor, ok := hierarchy.FindFloor(floorName)
	if !ok {
		return model.Room{}, model.ErrNotFound
	}

	room, ok := floor.FindRoom(roomName)
	if !ok {
		return model.Room{}, model.ErrNotFound
	}

	if room.ImageKey != "" && s.storage != nil {
		reader, err := s.storage.Download(ctx, room.ImageKey)
		if err != nil {
			return model.Room{}, fmt.Errorf("failed to download reference image: %w", err)
		}
		defer reader.Close()

		blob, err := io.ReadAll(reader)
		if err != nil {
			return model.Room{}, fmt.Errorf("failed to read reference image: %w", err)
		}
		room.Image = base64.StdEncoding.EncodeToString(blob)
	}

	return room, nil
}

func (s *Hierarchy) checkUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get user by id: %w", err)
	}
	return nil
}
