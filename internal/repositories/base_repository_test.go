package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedplan/internal/infra"
	"wedplan/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedGuest(t *testing.T, db *gorm.DB, phone string) *db_models.Guest {
	t.Helper()
	guest := &db_models.Guest{
		FirstName: "Asha",
		LastName:  "Verma",
		Phone:     phone,
		Side:      db_models.SideBride,
		AgeGroup:  db_models.AgeAdult,
	}
	require.NoError(t, db.Create(guest).Error)
	return guest
}

func TestBaseRepositorySoftDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBaseRepository[db_models.Guest](db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9000000001")

	deleted, err := repo.Delete(ctx, guest.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Default reads must not see the row anymore.
	got, err := repo.GetByID(ctx, guest.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// The escape hatch still does.
	any, err := repo.GetByIDAny(ctx, guest.ID)
	require.NoError(t, err)
	require.NotNil(t, any)
	assert.True(t, any.IsDeleted)

	// Deleting again is a no-op.
	deleted, err = repo.Delete(ctx, guest.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBaseRepositoryHardDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewBaseRepository[db_models.Guest](db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9000000006")

	// Works even on rows already flagged as deleted.
	_, err := repo.Delete(ctx, guest.ID)
	require.NoError(t, err)

	removed, err := repo.HardDelete(ctx, guest.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	// The row is gone entirely, not just hidden.
	any, err := repo.GetByIDAny(ctx, guest.ID)
	require.NoError(t, err)
	assert.Nil(t, any)

	removed, err = repo.HardDelete(ctx, guest.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestBaseRepositoryGetAllExcludesDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewBaseRepository[db_models.Guest](db)
	ctx := context.Background()

	keep := seedGuest(t, db, "9000000002")
	gone := seedGuest(t, db, "9000000003")

	_, err := repo.Delete(ctx, gone.ID)
	require.NoError(t, err)

	items, err := repo.GetAll(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBaseRepositoryUpdateEmptyFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewBaseRepository[db_models.Guest](db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9000000004")

	got, err := repo.Update(ctx, guest.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, guest.FirstName, got.FirstName)
}

func TestBaseRepositoryUpdateFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewBaseRepository[db_models.Guest](db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9000000005")

	got, err := repo.Update(ctx, guest.ID, map[string]interface{}{"first_name": "Meera", "is_vip": true})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Meera", got.FirstName)
	assert.True(t, got.IsVIP)
}
