package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

func TestInvitationCreateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	guest := seedTestGuest(t, db, "9200000001")
	event := seedTestEvent(t, db, "Mehendi")

	_, err := svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: guest.ID, EventID: event.ID})
	require.NoError(t, err)

	_, err = svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: guest.ID, EventID: event.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestInvitationCreateUnknownRefs(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	event := seedTestEvent(t, db, "Sangeet")
	_, err := svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: 999, EventID: event.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestBulkInviteCountsSkips(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	event := seedTestEvent(t, db, "Reception")
	g1 := seedTestGuest(t, db, "9200000011")
	g2 := seedTestGuest(t, db, "9200000012")

	// g2 is already invited, and 999 does not exist.
	_, err := svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: g2.ID, EventID: event.ID})
	require.NoError(t, err)

	result, err := svc.BulkInvite(ctx, request_models.BulkInvitationRequest{
		EventID:  event.ID,
		GuestIDs: []uint{g1.ID, g2.ID, 999},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, "1 invitations created, 2 skipped", result.Message)
}

func TestBulkRSVPSkipsUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	event := seedTestEvent(t, db, "Haldi")
	guest := seedTestGuest(t, db, "9200000021")
	inv, err := svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: guest.ID, EventID: event.ID})
	require.NoError(t, err)

	two := 2
	updated, err := svc.BulkRSVP(ctx, request_models.BulkRSVPRequest{Updates: []request_models.RSVPItem{
		{InvitationID: inv.ID, Status: string(db_models.InvitationConfirmed), PlusOnes: &two},
		{InvitationID: 999, Status: string(db_models.InvitationDeclined)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	got, err := svc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.InvitationConfirmed, got.Status)
	assert.Equal(t, 2, got.PlusOnes)
}

func TestMyInvitationsRequiresGuestRecord(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	user := seedTestUser(t, db, "nobody@example.com", db_models.RoleGuest)
	_, err := svc.MyInvitations(ctx, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestMyInvitationsMatchesByEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewInvitationService(
		repositories.NewInvitationRepository(db),
		repositories.NewGuestRepository(db),
		repositories.NewEventRepository(db),
		testLogger(),
	)
	ctx := context.Background()

	email := "asha@example.com"
	guest := seedTestGuest(t, db, "9200000031")
	require.NoError(t, db.Model(guest).Update("email", email).Error)
	event := seedTestEvent(t, db, "Engagement")
	_, err := svc.Create(ctx, request_models.CreateInvitationRequest{GuestID: guest.ID, EventID: event.ID})
	require.NoError(t, err)

	user := seedTestUser(t, db, email, db_models.RoleGuest)
	items, err := svc.MyInvitations(ctx, user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, guest.ID, items[0].GuestID)
}
