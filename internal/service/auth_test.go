package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-ai/atelier-server/internal/mocks"
	"github.com/atelier-ai/atelier-server/internal/model"
	"github.com/atelier-ai/atelier-server/internal/testutil"
	"github.com/atelier-ai/atelier-server/internal/token"
)

func TestAuth_Register_NewUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "alice" &&
			bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("pw1")) == nil
	})).Return(model.User{ID: uuid.New(), Username: "alice"}, nil)

	a := NewAuth(userStore, token.NewJWT("secret"), log)

	user, err := a.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	userStore.AssertExpectations(t)
}

func TestAuth_Register_ExistingUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{ID: uuid.New()}, nil)

	a := NewAuth(userStore, token.NewJWT("secret"), log)

	_, err := a.Register(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestAuth_Register_EmptyInput(t *testing.T) {
	ctx := context.Background()
	a := NewAuth(&mocks.UserStore{}, token.NewJWT("secret"), testutil.MakeNoopLogger())

	_, err := a.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, model.ErrInvalidInput)

	_, err = a.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	userID := uuid.New()

	userStore.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: userID, Username: "alice", PasswordHash: hash}, nil)

	manager := token.NewJWT("secret")
	a := NewAuth(userStore, manager, log)

	pair, err := a.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	parsedID, err := manager.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore.On("GetByUsername", mock.Anything, "alice").
		Return(model.User{ID: uuid.New(), Username: "alice", PasswordHash: hash}, nil)

	a := NewAuth(userStore, token.NewJWT("secret"), log)

	_, err = a.Login(ctx, "alice", "pw2")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByUsername", mock.Anything, "ghost").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, token.NewJWT("secret"), log)

	_, err := a.Login(ctx, "ghost", "pw")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Refresh(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	log := testutil.MakeNoopLogger()
	userID := uuid.New()

	userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Username: "alice"}, nil)

	manager := token.NewJWT("secret")
	a := NewAuth(userStore, manager, log)

	refreshToken, _, err := manager.GenerateRefreshToken(userID)
	require.NoError(t, err)

	pair, err := a.Refresh(ctx, refreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestAuth_Refresh_InvalidToken(t *testing.T) {
	ctx := context.Background()
	a := NewAuth(&mocks.UserStore{}, token.NewJWT("secret"), testutil.MakeNoopLogger())

	_, err := a.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuth_Refresh_AccessTokenRejected(t *testing.T) {
	ctx := context.Background()
	manager := token.NewJWT("secret")
	a := NewAuth(&mocks.UserStore{}, manager, testutil.MakeNoopLogger())

	accessToken, err := manager.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = a.Refresh(ctx, accessToken)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
