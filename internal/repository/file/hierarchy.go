package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.HierarchyStore = (*HierarchyRepository)(nil)

// HierarchyRepository stores every user's floor/room tree in a single JSON
// document keyed by user ID. Floors and rooms are slices so the document
// keeps insertion order across round-trips.
type HierarchyRepository struct {
	path string
	mu   sync.RWMutex
}

// NewHierarchyRepository creates a hierarchy store over dir/structure.json.
func NewHierarchyRepository(dir string) *HierarchyRepository {
	return &HierarchyRepository{
		path: filepath.Join(dir, "structure.json"),
	}
}

// AddFloor inserts a new floor for the user.
func (r *HierarchyRepository) AddFloor(_ context.Context, userID uuid.UUID, floor model.Floor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	key := userID.String()
	floors := doc[key]
	for _, f := range floors {
		if f.Name == floor.Name {
			return model.ErrDuplicateName
		}
	}

	if floor.CreatedAt.IsZero() {
		floor.CreatedAt = time.Now()
	}
	if floor.Rooms == nil {
		floor.Rooms = []model.Room{}
	}
	doc[key] = append(floors, floor)

	if err := saveDocument(r.path, doc); err != nil {
		return fmt.Errorf("failed to save hierarchy: %w", err)
	}

	return nil
}

// AddRoom inserts a new room under the named floor.
func (r *HierarchyRepository) AddRoom(_ context.Context, userID uuid.UUID, floorName string, room model.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	key := userID.String()
	floors := doc[key]

	idx := -1
	for i, f := range floors {
		if f.Name == floorName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrNotFound
	}

	for _, existing := range floors[idx].Rooms {
		if existing.Name == room.Name {
			return model.ErrDuplicateName
		}
	}

	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}
	floors[idx].Rooms = append(floors[idx].Rooms, room)
	doc[key] = floors

	if err := saveDocument(r.path, doc); err != nil {
		return fmt.Errorf("failed to save hierarchy: %w", err)
	}

	return nil
}

// List returns the user's full tree in insertion order.
func (r *HierarchyRepository) List(_ context.Context, userID uuid.UUID) (model.Hierarchy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.load()
	if err != nil {
		return model.Hierarchy{}, err
	}

	floors := doc[userID.String()]
	if floors == nil {
		floors = []model.Floor{}
	}

	return model.Hierarchy{
		UserID: userID,
		Floors: floors,
	}, nil
}

func (r *HierarchyRepository) load() (map[string][]model.Floor, error) {
	doc := map[string][]model.Floor{}
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, fmt.Errorf("failed to load hierarchy: %w", err)
	}
	return doc, nil
}
