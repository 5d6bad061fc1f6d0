package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.HierarchyStore = (*HierarchyRepository)(nil)

type HierarchyRepository struct {
	db *Connection
}

func NewHierarchyRepository(db *Connection) *HierarchyRepository {
	return &HierarchyRepository{
		db: db,
	}
}

func (r *HierarchyRepository) AddFloor(ctx context.Context, userID uuid.UUID, floor model.Floor) error {
	query := `INSERT INTO floors (id, user_id, name, dimensions) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, floor.Name, floor.Dimensions)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		return fmt.Errorf("failed to insert floor: %w", err)
	}

	return nil
}

func (r *HierarchyRepository) AddRoom(ctx context.Context, userID uuid.UUID, floorName string, room model.Room) error {
	var floorID uuid.UUID
	query := `SELECT id FROM floors WHERE user_id = $1 AND name = $2`

	err := r.db.QueryRow(ctx, query, userID, floorName).Scan(&floorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get floor: %w", err)
	}

	insert := `INSERT INTO rooms (id, floor_id, name, dimensions, style, color, furniture, image, image_key)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.Exec(ctx, insert,
		uuid.New(), floorID, room.Name, room.Dimensions, room.Style, room.Color,
		room.Furniture, room.Image, room.ImageKey,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicateName
		}
		return fmt.Errorf("failed to insert room: %w", err)
	}

	return nil
}

func (r *HierarchyRepository) List(ctx context.Context, userID uuid.UUID) (model.Hierarchy, error) {
	floorsQuery := `SELECT id, name, dimensions, created_at
					FROM floors WHERE user_id = $1 ORDER BY created_at, name`

	rows, err := r.db.Query(ctx, floorsQuery, userID)
	if err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to query floors: %w", err)
	}
	defer rows.Close()

	floors := []model.Floor{}
	floorIndex := map[uuid.UUID]int{}
	for rows.Next() {
		var id uuid.UUID
		var floor model.Floor
		if err := rows.Scan(&id, &floor.Name, &floor.Dimensions, &floor.CreatedAt); err != nil {
			return model.Hierarchy{}, fmt.Errorf("failed to scan floor: %w", err)
		}
		floor.Rooms = []model.Room{}
		floorIndex[id] = len(floors)
		floors = append(floors, floor)
	}
	if err := rows.Err(); err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to read floors: %w", err)
	}

	roomsQuery := `SELECT r.floor_id, r.name, r.dimensions, r.style, r.color, r.furniture, r.image, r.image_key, r.created_at
				   FROM rooms r
				   JOIN floors f ON f.id = r.floor_id
				   WHERE f.user_id = $1
				   ORDER BY r.created_at, r.name`

	roomRows, err := r.db.Query(ctx, roomsQuery, userID)
	if err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer roomRows.Close()

	for roomRows.Next() {
		var floorID uuid.UUID
		var room model.Room
		if err := roomRows.Scan(
			&floorID, &room.Name, &room.Dimensions, &room.Style, &room.Color,
			&room.Furniture, &room.Image, &room.ImageKey, &room.CreatedAt,
		); err != nil {
			return model.Hierarchy{}, fmt.Errorf("failed to scan room: %w", err)
		}
		if idx, ok := floorIndex[floorID]; ok {
			floors[idx].Rooms = append(floors[idx].Rooms, room)
		}
	}
	if err := roomRows.Err(); err != nil {
		return model.Hierarchy{}, fmt.Errorf("failed to read rooms: %w", err)
	}

	return model.Hierarchy{
		UserID: userID,
		Floors: floors,
	}, nil
}
