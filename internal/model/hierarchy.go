package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// HierarchyStore defines persistence operations for the per-user floor/room tree.
type HierarchyStore interface {
	// AddFloor inserts a new floor for the user. Returns ErrDuplicateName if a
	// floor with the same name already exists.
	AddFloor(ctx context.Context, userID uuid.UUID, floor Floor) error
	// AddRoom inserts a new room under the named floor. Returns ErrNotFound if
	// the floor does not exist and ErrDuplicateName if the room name is taken
	// within the floor. An absent floor is never created as a side effect.
	AddRoom(ctx context.Context, userID uuid.UUID, floorName string, room Room) error
	// List returns the user's full floor/room tree in insertion order. A user
	// with no hierarchy yet gets an empty tree, not an error.
	List(ctx context.Context, userID uuid.UUID) (Hierarchy, error)
}

// Hierarchy is the per-user tree of floors and rooms.
type Hierarchy struct {
	UserID uuid.UUID `json:"user_id"`
	Floors []Floor   `json:"floors"`
}

// Floor is a named level in a building, unique per user.
type Floor struct {
	Name       string    `json:"name"`
	Dimensions string    `json:"dimensions,omitempty"`
	Rooms      []Room    `json:"rooms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Room is a named space within a floor carrying design attributes used to
// build generation prompts. The reference image is held either inline as
// base64 or offloaded to object storage under ImageKey, never both.
type Room struct {
	Name       string    `json:"name"`
	Dimensions string    `json:"dimensions,omitempty"`
	Style      string    `json:"style,omitempty"`
	Color      string    `json:"color,omitempty"`
	Furniture  string    `json:"furniture,omitempty"`
	Image      string    `json:"image,omitempty"`
	ImageKey   string    `json:"image_key,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// FindFloor returns the named floor and whether it exists.
func (h Hierarchy) FindFloor(name string) (Floor, bool) {
	for _, f := range h.Floors {
		if f.Name == name {
			return f, true
		}
	}
	return Floor{}, false
}

// FindRoom returns the named room within a floor and whether it exists.
func (f Floor) FindRoom(name string) (Room, bool) {
	for _, r := range f.Rooms {
		if r.Name == name {
			return r, true
		}
	}
	return Room{}, false
}
