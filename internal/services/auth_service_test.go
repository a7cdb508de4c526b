package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

func newAuthService(db *gorm.DB) AuthServiceInterface {
	jwt := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthService(repositories.NewUserRepository(db), jwt, testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, request_models.RegisterRequest{
		Email:    "new@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "supersecret", user.HashedPassword)

	tokens, err := svc.Login(ctx, request_models.LoginRequest{Email: "new@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, request_models.RegisterRequest{Email: "dup@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, request_models.RegisterRequest{Email: "dup@example.com", Password: "supersecret"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, request_models.RegisterRequest{Email: "a@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, request_models.LoginRequest{Email: "a@example.com", Password: "wrong-password"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUnauthorized))
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	db := newTestDB(t)
	jwt := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	svc := NewAuthService(repositories.NewUserRepository(db), jwt, testLogger())
	ctx := context.Background()

	user, err := svc.Register(ctx, request_models.RegisterRequest{Email: "b@example.com", Password: "supersecret"})
	require.NoError(t, err)

	access, err := jwt.CreateAccessToken(user.ID)
	require.NoError(t, err)

	// An access token must not pass as a refresh token.
	_, err = svc.Refresh(ctx, access)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUnauthorized))

	refresh, err := jwt.CreateRefreshToken(user.ID)
	require.NoError(t, err)
	tokens, err := svc.Refresh(ctx, refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefreshRejectsDisabledAccount(t *testing.T) {
	db := newTestDB(t)
	jwt := utils.NewJWTManager("test-secret", 15*time.Minute, 24*time.Hour)
	svc := NewAuthService(repositories.NewUserRepository(db), jwt, testLogger())
	ctx := context.Background()

	user, err := svc.Register(ctx, request_models.RegisterRequest{Email: "c@example.com", Password: "supersecret"})
	require.NoError(t, err)
	refresh, err := jwt.CreateRefreshToken(user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err = svc.Refresh(ctx, refresh)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUnauthorized))
}
