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

func newGuestService(db *gorm.DB) GuestServiceInterface {
	return NewGuestService(
		repositories.NewGuestRepository(db),
		repositories.NewLookupRepository[db_models.DietaryPreference](db),
		repositories.NewLookupRepository[db_models.RelationType](db),
		repositories.NewLookupRepository[db_models.FamilyGroup](db),
	)
}

func TestGuestCreatePhoneConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000001", Side: "bride",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Meera", LastName: "Joshi", Phone: "9300000001", Side: "groom",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestGuestCreateUnknownDietaryPreference(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	missing := uint(42)
	_, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000002", Side: "bride",
		DietaryPreferenceID: &missing,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestGuestCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	guest, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000003", Side: "bride",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.AgeAdult, guest.AgeGroup)
	require.NotNil(t, guest.NumberOfPersons)
	assert.Equal(t, 1, *guest.NumberOfPersons)
	assert.False(t, guest.IsVIP)
}

func TestGuestUpdatePhoneConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000004", Side: "bride",
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Meera", LastName: "Joshi", Phone: "9300000005", Side: "groom",
	})
	require.NoError(t, err)

	taken := "9300000004"
	_, err = svc.Update(ctx, second.ID, request_models.UpdateGuestRequest{Phone: &taken})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))

	// Re-submitting the guest's own phone is not a conflict.
	own := "9300000005"
	_, err = svc.Update(ctx, second.ID, request_models.UpdateGuestRequest{Phone: &own})
	require.NoError(t, err)
}

func TestGuestDeleteHidesFromList(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	guest, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000006", Side: "bride",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, guest.ID))

	_, err = svc.GetByID(ctx, guest.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	err = svc.Delete(ctx, guest.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestGuestSummaryCountsPersons(t *testing.T) {
	db := newTestDB(t)
	svc := newGuestService(db)
	ctx := context.Background()

	three := 3
	_, err := svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Asha", LastName: "Verma", Phone: "9300000007", Side: "bride",
		NumberOfPersons: &three,
	})
	require.NoError(t, err)
	vip := true
	_, err = svc.Create(ctx, request_models.CreateGuestRequest{
		FirstName: "Meera", LastName: "Joshi", Phone: "9300000008", Side: "groom",
		IsVIP: &vip,
	})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalGuests)
	assert.Equal(t, int64(4), summary.TotalPersons)
	assert.Equal(t, int64(1), summary.BySide["bride"])
	assert.Equal(t, int64(1), summary.BySide["groom"])
	assert.Equal(t, int64(1), summary.VIPCount)
}
