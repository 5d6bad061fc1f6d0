package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.SettingsStore = (*SettingsRepository)(nil)

// SettingsRepository stores per-user settings in a single JSON document keyed
// by user ID.
type SettingsRepository struct {
	path string
	mu   sync.RWMutex
}

// NewSettingsRepository creates a settings store over dir/settings.json.
func NewSettingsRepository(dir string) *SettingsRepository {
	return &SettingsRepository{
		path: filepath.Join(dir, "settings.json"),
	}
}

// GetByUserID returns the user's saved settings.
func (r *SettingsRepository) GetByUserID(_ context.Context, userID uuid.UUID) (model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, err := r.load()
	if err != nil {
		return model.Settings{}, err
	}

	settings, ok := doc[userID.String()]
	if !ok {
		return model.Settings{}, model.ErrNotFound
	}

	return settings, nil
}

// Save overwrites the user's whole settings record.
func (r *SettingsRepository) Save(_ context.Context, userID uuid.UUID, settings model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	doc[userID.String()] = settings

	if err := saveDocument(r.path, doc); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

func (r *SettingsRepository) load() (map[string]model.Settings, error) {
	doc := map[string]model.Settings{}
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return doc, nil
}
