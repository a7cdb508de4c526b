package infra

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedplan/config"
	"wedplan/internal/models/db_models"
)

func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	cfg := &config.Config{
		FirstAdminEmail:    "admin@example.com",
		FirstAdminPassword: "changeme123",
	}
	require.NoError(t, Seed(db, cfg, zerolog.Nop()))
	return db
}

func TestSeedPopulatesLookupTables(t *testing.T) {
	db := newSeededDB(t)

	var eventTypes []db_models.EventType
	require.NoError(t, db.Find(&eventTypes).Error)
	require.Len(t, eventTypes, len(eventTypeNames))
	for _, et := range eventTypes {
		assert.True(t, et.IsActive)
		assert.False(t, et.CreatedAt.IsZero())
		assert.False(t, et.UpdatedAt.IsZero())
	}

	var dietCount int64
	require.NoError(t, db.Model(&db_models.DietaryPreference{}).Count(&dietCount).Error)
	assert.Equal(t, int64(len(dietaryPreferenceNames)), dietCount)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newSeededDB(t)

	cfg := &config.Config{
		FirstAdminEmail:    "admin@example.com",
		FirstAdminPassword: "changeme123",
	}
	require.NoError(t, Seed(db, cfg, zerolog.Nop()))

	var count int64
	require.NoError(t, db.Model(&db_models.EventType{}).Count(&count).Error)
	assert.Equal(t, int64(len(eventTypeNames)), count)

	var admins int64
	require.NoError(t, db.Model(&db_models.User{}).
		Where("role = ?", db_models.RoleAdmin).
		Count(&admins).Error)
	assert.Equal(t, int64(1), admins)
}

func TestSeedCreatesFirstAdmin(t *testing.T) {
	db := newSeededDB(t)

	var admin db_models.User
	require.NoError(t, db.Where("role = ?", db_models.RoleAdmin).First(&admin).Error)
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "changeme123", admin.HashedPassword)
}
