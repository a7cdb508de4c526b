package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
)

func seedEvent(t *testing.T, db *gorm.DB, name string) *db_models.Event {
	t.Helper()
	eventType := &db_models.EventType{LookupFields: db_models.LookupFields{Name: name + " type", IsActive: true}}
	require.NoError(t, db.Create(eventType).Error)
	event := &db_models.Event{
		Name:        name,
		EventTypeID: eventType.ID,
		EventDate:   time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		Status:      db_models.EventUpcoming,
	}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestReactivateOrCreateNewPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9100000001")
	event := seedEvent(t, db, "Sangeet")

	inv, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{
		GuestID: guest.ID,
		EventID: event.ID,
		Status:  db_models.InvitationPending,
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, inv)
	assert.Equal(t, guest.ID, inv.GuestID)
}

func TestReactivateOrCreateActiveConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9100000002")
	event := seedEvent(t, db, "Reception")

	_, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{GuestID: guest.ID, EventID: event.ID, Status: db_models.InvitationPending})
	require.NoError(t, err)
	require.True(t, created)

	inv, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{GuestID: guest.ID, EventID: event.ID, Status: db_models.InvitationSent})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, inv)
}

func TestReactivateOrCreateReactivatesDeletedRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	guest := seedGuest(t, db, "9100000003")
	event := seedEvent(t, db, "Haldi")

	first, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{GuestID: guest.ID, EventID: event.ID, Status: db_models.InvitationPending})
	require.NoError(t, err)
	require.True(t, created)

	gone, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, gone)

	// Re-inviting the same pair revives the original row instead of
	// inserting a second one.
	second, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{GuestID: guest.ID, EventID: event.ID, Status: db_models.InvitationConfirmed})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.IsDeleted)
	assert.Equal(t, db_models.InvitationConfirmed, second.Status)

	var total int64
	require.NoError(t, db.Model(&db_models.Invitation{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestGetRSVPSummary(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvitationRepository(db)
	ctx := context.Background()

	event := seedEvent(t, db, "Wedding Ceremony")
	phones := []string{"9100000011", "9100000012", "9100000013"}
	statuses := []db_models.InvitationStatus{db_models.InvitationConfirmed, db_models.InvitationConfirmed, db_models.InvitationDeclined}
	plusOnes := []int{1, 2, 0}
	for i, phone := range phones {
		guest := seedGuest(t, db, phone)
		_, created, err := repo.ReactivateOrCreate(ctx, &db_models.Invitation{
			GuestID:  guest.ID,
			EventID:  event.ID,
			Status:   statuses[i],
			PlusOnes: plusOnes[i],
		})
		require.NoError(t, err)
		require.True(t, created)
	}

	summary, err := repo.GetRSVPSummary(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.TotalInvited)
	assert.Equal(t, int64(2), summary.Confirmed)
	assert.Equal(t, int64(1), summary.Declined)
	assert.Equal(t, int64(3), summary.TotalPlusOnes)
	assert.Equal(t, int64(5), summary.TotalExpectedAttendees)
}
