package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHierarchyRepository(t *testing.T) {
	db := &Connection{}
	repo := NewHierarchyRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestNewSettingsRepository(t *testing.T) {
	db := &Connection{}
	repo := NewSettingsRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
