package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// Settings manages per-user display preferences.
type Settings struct {
	settingsStore model.SettingsStore
	userStore     model.UserStore
	logger        *logger.Logger
}

// NewSettings creates a new Settings service.
func NewSettings(
	settingsStore model.SettingsStore,
	userStore model.UserStore,
	logger *logger.Logger,
) *Settings {
	return &Settings{
		settingsStore: settingsStore,
		userStore:     userStore,
		logger:        logger,
	}
}

// Get returns the user's settings, falling back to defaults when none were
// ever saved.
func (s *Settings) Get(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	settings, err := s.settingsStore.GetByUserID(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Settings{}, model.ErrNotFound
		}
		return model.Settings{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return model.DefaultSettings(user.Username), nil
}

// Save overwrites the user's whole settings record.
func (s *Settings) Save(ctx context.Context, userID uuid.UUID, settings model.Settings) error {
	if settings.Theme != "light" && settings.Theme != "dark" {
		return fmt.Errorf("%w: theme must be light or dark", model.ErrInvalidInput)
	}
	if settings.AccountName == "" {
		return fmt.Errorf("%w: account name is required", model.ErrInvalidInput)
	}

	if err := s.settingsStore.Save(ctx, userID, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info("Settings service: settings saved",
		"user_id", userID,
		"theme", settings.Theme)

	return nil
}
