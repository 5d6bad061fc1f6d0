package model

import (
	"context"

	"github.com/google/uuid"
)

// SettingsStore defines persistence operations for per-user UI settings.
type SettingsStore interface {
	// GetByUserID returns the user's settings, or ErrNotFound if none were
	// ever saved. Callers fall back to DefaultSettings.
	GetByUserID(ctx context.Context, userID uuid.UUID) (Settings, error)
	// Save overwrites the user's whole settings record.
	Save(ctx context.Context, userID uuid.UUID, settings Settings) error
}

// Settings holds per-user display preferences.
type Settings struct {
	AccountName string `json:"account_name"`
	Theme       string `json:"theme"`
}

// DefaultSettings returns the settings a user has before saving any.
func DefaultSettings(username string) Settings {
	return Settings{
		AccountName: username,
		Theme:       "light",
	}
}
