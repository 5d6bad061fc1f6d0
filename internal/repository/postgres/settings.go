package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.SettingsStore = (*SettingsRepository)(nil)

type SettingsRepository struct {
	db *Connection
}

func NewSettingsRepository(db *Connection) *SettingsRepository {
	return &SettingsRepository{
		db: db,
	}
}

func (r *SettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	var settings model.Settings
	query := `SELECT account_name, theme FROM settings WHERE user_id = $1`

	err := r.db.QueryRow(ctx, query, userID).Scan(&settings.AccountName, &settings.Theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Settings{}, model.ErrNotFound
		}
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (r *SettingsRepository) Save(ctx context.Context, userID uuid.UUID, settings model.Settings) error {
	query := `INSERT INTO settings (user_id, account_name, theme, updated_at)
			  VALUES ($1, $2, $3, NOW())
			  ON CONFLICT (user_id) DO UPDATE
			  SET account_name = EXCLUDED.account_name, theme = EXCLUDED.theme, updated_at = NOW()`

	if _, err := r.db.Exec(ctx, query, userID, settings.AccountName, settings.Theme); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
