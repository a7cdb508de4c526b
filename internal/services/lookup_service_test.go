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

func newEventTypeService(db *gorm.DB) *LookupService[db_models.EventType] {
	repo := repositories.NewLookupRepository[db_models.EventType](db)
	return NewLookupService(repo, "event type", func(req request_models.CreateLookupRequest) *db_models.EventType {
		fields := db_models.LookupFields{Name: req.Name, Description: req.Description, IsActive: true}
		if req.IsActive != nil {
			fields.IsActive = *req.IsActive
		}
		return &db_models.EventType{LookupFields: fields}
	})
}

func TestLookupCreateNameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newEventTypeService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateLookupRequest{Name: "Roka"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, request_models.CreateLookupRequest{Name: "Roka"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestLookupUpdateKeepsOwnName(t *testing.T) {
	db := newTestDB(t)
	svc := newEventTypeService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateLookupRequest{Name: "Roka"})
	require.NoError(t, err)

	// Re-submitting the current name is not a conflict.
	name := "Roka"
	desc := "Pre-engagement ceremony"
	updated, err := svc.Update(ctx, created.ID, request_models.UpdateLookupRequest{Name: &name, Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
}

func TestLookupUpdateNameConflictWithOther(t *testing.T) {
	db := newTestDB(t)
	svc := newEventTypeService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateLookupRequest{Name: "Roka"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, request_models.CreateLookupRequest{Name: "Tilak"})
	require.NoError(t, err)

	name := "Roka"
	_, err = svc.Update(ctx, second.ID, request_models.UpdateLookupRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestLookupDeactivateHidesFromActiveList(t *testing.T) {
	db := newTestDB(t)
	svc := newEventTypeService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, request_models.CreateLookupRequest{Name: "Roka"})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, created.ID, request_models.UpdateLookupRequest{IsActive: &inactive})
	require.NoError(t, err)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	for _, item := range active {
		assert.NotEqual(t, created.ID, item.ID)
	}

	all, total, err := svc.List(ctx, 0, -1)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
	assert.GreaterOrEqual(t, total, int64(1))
}

func TestLookupDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newEventTypeService(db)

	err := svc.Delete(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
