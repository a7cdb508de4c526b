package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

func newUserService(db *gorm.DB) UserServiceInterface {
	return NewUserService(repositories.NewUserRepository(db))
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	_, err := svc.Create(context.Background(), request_models.CreateUserRequest{
		Email:    "x@example.com",
		Password: "supersecret",
		Role:     "superuser",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrBadRequest))
}

func TestCreateUserWithRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	user, err := svc.Create(context.Background(), request_models.CreateUserRequest{
		Email:    "m@example.com",
		Password: "supersecret",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleManager, user.Role)
}

func TestAdminUpdateRejectsUnknownRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	existing := seedTestUser(t, db, "u@example.com", db_models.RoleUser)

	bad := "root"
	_, err := svc.UpdateByAdmin(context.Background(), existing.ID, request_models.UpdateUserAdminRequest{Role: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrBadRequest))

	// The stored role is untouched.
	got, err := svc.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleUser, got.Role)
}

func TestAdminUpdatePromotesRole(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	existing := seedTestUser(t, db, "u2@example.com", db_models.RoleUser)

	role := "manager"
	updated, err := svc.UpdateByAdmin(context.Background(), existing.ID, request_models.UpdateUserAdminRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, db_models.RoleManager, updated.Role)
}
