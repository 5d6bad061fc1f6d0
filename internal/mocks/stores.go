// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/atelier-ai/atelier-server/internal/model"
)

// UserStore is a mock of model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	ret := m.Called(ctx, username)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	ret := m.Called(ctx, id)
	return ret.Get(0).(model.User), ret.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	ret := m.Called(ctx, user)
	return ret.Get(0).(model.User), ret.Error(1)
}

// HierarchyStore is a mock of model.HierarchyStore.
type HierarchyStore struct {
	mock.Mock
}

func (m *HierarchyStore) AddFloor(ctx context.Context, userID uuid.UUID, floor model.Floor) error {
	ret := m.Called(ctx, userID, floor)
	return ret.Error(0)
}

func (m *HierarchyStore) AddRoom(ctx context.Context, userID uuid.UUID, floorName string, room model.Room) error {
	ret := m.Called(ctx, userID, floorName, room)
	return ret.Error(0)
}

func (m *HierarchyStore) List(ctx context.Context, userID uuid.UUID) (model.Hierarchy, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.Hierarchy), ret.Error(1)
}

// SettingsStore is a mock of model.SettingsStore.
type SettingsStore struct {
	mock.Mock
}

func (m *SettingsStore) GetByUserID(ctx context.Context, userID uuid.UUID) (model.Settings, error) {
	ret := m.Called(ctx, userID)
	return ret.Get(0).(model.Settings), ret.Error(1)
}

func (m *SettingsStore) Save(ctx context.Context, userID uuid.UUID, settings model.Settings) error {
	ret := m.Called(ctx, userID, settings)
	return ret.Error(0)
}

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	ret := m.Called(userID)
	return ret.String(0), ret.Error(1)
}

func (m *TokenManager) GenerateRefreshToken(userID uuid.UUID) (string, string, error) {
	ret := m.Called(userID)
	return ret.String(0), ret.String(1), ret.Error(2)
}

func (m *TokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	ret := m.Called(token)
	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

func (m *TokenManager) ParseRefreshToken(token string) (uuid.UUID, string, error) {
	ret := m.Called(token)
	return ret.Get(0).(uuid.UUID), ret.String(1), ret.Error(2)
}

// Storage is a mock of model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key string, reader io.Reader) error {
	ret := m.Called(ctx, key, reader)
	return ret.Error(0)
}

func (m *Storage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := m.Called(ctx, key)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(io.ReadCloser), ret.Error(1)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	ret := m.Called(ctx, key)
	return ret.Error(0)
}

func (m *Storage) Exists(ctx context.Context, key string) (bool, error) {
	ret := m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// GenerationClient is a mock of model.GenerationClient.
type GenerationClient struct {
	mock.Mock
}

func (m *GenerationClient) GenerateImage(ctx context.Context, prompt string) (json.RawMessage, error) {
	ret := m.Called(ctx, prompt)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(json.RawMessage), ret.Error(1)
}

func (m *GenerationClient) Reason(ctx context.Context, prompt string) (json.RawMessage, error) {
	ret := m.Called(ctx, prompt)
	if ret.Get(0) == nil {
		return nil, ret.Error(1)
	}
	return ret.Get(0).(json.RawMessage), ret.Error(1)
}
