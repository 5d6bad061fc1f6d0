package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-ai/atelier-server/internal/logger"
	"github.com/atelier-ai/atelier-server/internal/model"
)

// Auth handles registration, login and token refresh.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

// NewAuth creates a new Auth service.
func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new account with a bcrypt password hash. An existing
// username is rejected rather than having its password silently reset.
func (a *Auth) Register(ctx context.Context, username, password string) (model.User, error) {
	a.logger.Debug("Auth service: starting user registration",
		"username", username)

	if username == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: username and password are required", model.ErrInvalidInput)
	}

	existingUser, err := a.userStore.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if existingUser.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"username", username)
		return model.User{}, model.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	user, err = a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registration completed",
		"username", username,
		"user_id", user.ID)

	return user, nil
}

// Login verifies credentials and issues a token pair. Missing user and wrong
// password collapse into the same error so login probing reveals nothing.
func (a *Auth) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: starting user login",
		"username", username)

	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.issueTokens(user.ID)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: user login completed",
		"username", username,
		"user_id", user.ID)

	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	userID, _, err := a.tokenManager.ParseRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, model.ErrInvalidToken
	}

	if _, err := a.userStore.GetByID(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TokenPair{}, model.ErrInvalidToken
		}
		return model.TokenPair{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return a.issueTokens(userID)
}

func (a *Auth) issueTokens(userID uuid.UUID) (model.TokenPair, error) {
	accessToken, err := a.tokenManager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, _, err := a.tokenManager.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
