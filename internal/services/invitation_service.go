package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type InvitationServiceInterface interface {
	List(ctx context.Context) ([]db_models.Invitation, error)
	ListByEvent(ctx context.Context, eventID uint, skip, limit int) ([]db_models.Invitation, int64, error)
	ListByGuest(ctx context.Context, guestID uint, skip, limit int) ([]db_models.Invitation, error)
	GetByID(ctx context.Context, id uint) (*db_models.Invitation, error)
	Create(ctx context.Context, req request_models.CreateInvitationRequest) (*db_models.Invitation, error)
	BulkInvite(ctx context.Context, req request_models.BulkInvitationRequest) (*response_models.BulkInvitationResponse, error)
	Update(ctx context.Context, id uint, req request_models.UpdateInvitationRequest) (*db_models.Invitation, error)
	BulkRSVP(ctx context.Context, req request_models.BulkRSVPRequest) (int, error)
	Delete(ctx context.Context, id uint) error
	GetRSVPSummary(ctx context.Context, eventID uint) (*response_models.RSVPSummaryResponse, error)
	MyInvitations(ctx context.Context, user *db_models.User) ([]db_models.Invitation, error)
	ExportRows(ctx context.Context) ([]response_models.InvitationExportRow, error)
}

type InvitationService struct {
	invitations repositories.InvitationRepository
	guests      repositories.GuestRepository
	events      repositories.EventRepository
	logger      zerolog.Logger
}

func NewInvitationService(
	invitations repositories.InvitationRepository,
	guests repositories.GuestRepository,
	events repositories.EventRepository,
	logger zerolog.Logger,
) InvitationServiceInterface {
	return &InvitationService{invitations: invitations, guests: guests, events: events, logger: logger}
}

func (s *InvitationService) List(ctx context.Context) ([]db_models.Invitation, error) {
	items, err := s.invitations.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *InvitationService) ListByEvent(ctx context.Context, eventID uint, skip, limit int) ([]db_models.Invitation, int64, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, 0, err
	}
	items, err := s.invitations.GetByEvent(ctx, eventID, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.invitations.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *InvitationService) ListByGuest(ctx context.Context, guestID uint, skip, limit int) ([]db_models.Invitation, error) {
	if err := s.checkGuest(ctx, guestID); err != nil {
		return nil, err
	}
	items, err := s.invitations.GetByGuest(ctx, guestID, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *InvitationService) GetByID(ctx context.Context, id uint) (*db_models.Invitation, error) {
	inv, err := s.invitations.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: invitation not found", utils.ErrNotFound)
	}
	return inv, nil
}

// Create issues an invitation for a (guest, event) pair. A soft-deleted
// invitation for the same pair is reactivated in place so the pair keeps
// its original row; an active one is a conflict.
func (s *InvitationService) Create(ctx context.Context, req request_models.CreateInvitationRequest) (*db_models.Invitation, error) {
	if err := s.checkGuest(ctx, req.GuestID); err != nil {
		return nil, err
	}
	if err := s.checkEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	inv := &db_models.Invitation{
		GuestID: req.GuestID,
		EventID: req.EventID,
		Status:  db_models.InvitationPending,
		Notes:   req.Notes,
	}
	if req.Status != nil {
		inv.Status = db_models.InvitationStatus(*req.Status)
	}
	if req.PlusOnes != nil {
		inv.PlusOnes = *req.PlusOnes
	}

	created, ok, err := s.invitations.ReactivateOrCreate(ctx, inv)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !ok {
		return nil, fmt.Errorf("%w: guest is already invited to this event", utils.ErrConflict)
	}
	return created, nil
}

// BulkInvite invites many guests to one event in a single call. Guests
// that do not exist or already hold an active invitation are counted as
// skipped rather than failing the batch.
func (s *InvitationService) BulkInvite(ctx context.Context, req request_models.BulkInvitationRequest) (*response_models.BulkInvitationResponse, error) {
	if err := s.checkEvent(ctx, req.EventID); err != nil {
		return nil, err
	}

	status := db_models.InvitationPending
	if req.Status != nil {
		status = db_models.InvitationStatus(*req.Status)
	}

	created, skipped := 0, 0
	for _, guestID := range req.GuestIDs {
		guest, err := s.guests.GetByID(ctx, guestID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if guest == nil {
			skipped++
			continue
		}

		inv := &db_models.Invitation{GuestID: guestID, EventID: req.EventID, Status: status}
		_, ok, err := s.invitations.ReactivateOrCreate(ctx, inv)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if !ok {
			skipped++
			continue
		}
		created++
	}

	s.logger.Info().
		Uint("event_id", req.EventID).
		Int("created", created).
		Int("skipped", skipped).
		Msg("bulk invite finished")

	return &response_models.BulkInvitationResponse{
		Created: created,
		Skipped: skipped,
		Message: fmt.Sprintf("%d invitations created, %d skipped", created, skipped),
	}, nil
}

func (s *InvitationService) Update(ctx context.Context, id uint, req request_models.UpdateInvitationRequest) (*db_models.Invitation, error) {
	existing, err := s.invitations.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: invitation not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.PlusOnes != nil {
		fields["plus_ones"] = *req.PlusOnes
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.invitations.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

// BulkRSVP records RSVP answers for many invitations at once. Unknown
// invitation ids are skipped silently; the count of applied updates is
// returned.
func (s *InvitationService) BulkRSVP(ctx context.Context, req request_models.BulkRSVPRequest) (int, error) {
	updated := 0
	for _, item := range req.Updates {
		existing, err := s.invitations.GetByID(ctx, item.InvitationID)
		if err != nil {
			return 0, utils.ErrDatabaseError
		}
		if existing == nil {
			continue
		}

		fields := map[string]interface{}{"status": item.Status}
		if item.PlusOnes != nil {
			fields["plus_ones"] = *item.PlusOnes
		}
		if _, err := s.invitations.Update(ctx, item.InvitationID, fields); err != nil {
			return 0, utils.ErrDatabaseError
		}
		updated++
	}
	return updated, nil
}

func (s *InvitationService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.invitations.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: invitation not found", utils.ErrNotFound)
	}
	return nil
}

func (s *InvitationService) GetRSVPSummary(ctx context.Context, eventID uint) (*response_models.RSVPSummaryResponse, error) {
	if err := s.checkEvent(ctx, eventID); err != nil {
		return nil, err
	}
	summary, err := s.invitations.GetRSVPSummary(ctx, eventID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

// MyInvitations resolves the caller to a guest record by email and
// returns that guest's invitations.
func (s *InvitationService) MyInvitations(ctx context.Context, user *db_models.User) ([]db_models.Invitation, error) {
	guest, err := s.guests.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, fmt.Errorf("%w: no guest record matches your account", utils.ErrNotFound)
	}
	items, err := s.invitations.GetByGuest(ctx, guest.ID, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *InvitationService) ExportRows(ctx context.Context) ([]response_models.InvitationExportRow, error) {
	invitations, err := s.invitations.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.InvitationExportRow, 0, len(invitations))
	for _, inv := range invitations {
		row := response_models.InvitationExportRow{
			ID:       inv.ID,
			Status:   string(inv.Status),
			PlusOnes: inv.PlusOnes,
			Notes:    strDeref(inv.Notes),
		}
		if inv.Guest != nil {
			row.Guest = inv.Guest.FirstName + " " + inv.Guest.LastName
		}
		if inv.Event != nil {
			row.Event = inv.Event.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *InvitationService) checkGuest(ctx context.Context, id uint) error {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if guest == nil {
		return fmt.Errorf("%w: guest not found", utils.ErrNotFound)
	}
	return nil
}

func (s *InvitationService) checkEvent(ctx context.Context, id uint) error {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return fmt.Errorf("%w: event not found", utils.ErrNotFound)
	}
	return nil
}
