package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/atelier-ai/atelier-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository stores users in a single JSON document keyed by username.
type UserRepository struct {
	path string
	mu   sync.RWMutex
}

// NewUserRepository creates a user store over dir/users.json.
func NewUserRepository(dir string) *UserRepository {
	return &UserRepository{
		path: filepath.Join(dir, "users.json"),
	}
}

// GetByUsername returns the user with the given username.
func (r *UserRepository) GetByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, err := r.load()
	if err != nil {
		return model.User{}, err
	}

	user, ok := users[username]
	if !ok {
		return model.User{}, model.ErrNotFound
	}

	return user, nil
}

// GetByID returns the user with the given ID.
func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, err := r.load()
	if err != nil {
		return model.User{}, err
	}

	for _, user := range users {
		if user.ID == id {
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Create inserts a new user. An existing username is rejected rather than
// silently overwritten.
func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return model.User{}, err
	}

	if _, ok := users[user.Username]; ok {
		return model.User{}, model.ErrUsernameTaken
	}

	users[user.Username] = user

	if err := saveDocument(r.path, users); err != nil {
		return model.User{}, fmt.Errorf("failed to save users: %w", err)
	}

	return user, nil
}

func (r *UserRepository) load() (map[string]model.User, error) {
	users := map[string]model.User{}
	if err := loadDocument(r.path, &users); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	return users, nil
}
