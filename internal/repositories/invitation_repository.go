package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type InvitationRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Invitation, error)
	GetAll(ctx context.Context) ([]db_models.Invitation, error)
	GetByEvent(ctx context.Context, eventID uint, skip, limit int) ([]db_models.Invitation, error)
	GetByGuest(ctx context.Context, guestID uint, skip, limit int) ([]db_models.Invitation, error)
	GetByEventAndGuest(ctx context.Context, eventID, guestID uint) (*db_models.Invitation, error)
	ReactivateOrCreate(ctx context.Context, inv *db_models.Invitation) (*db_models.Invitation, bool, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Invitation, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
	GetRSVPSummary(ctx context.Context, eventID uint) (*response_models.RSVPSummaryResponse, error)
}

type invitationRepository struct {
	*BaseRepository[db_models.Invitation]
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{BaseRepository: NewBaseRepository[db_models.Invitation](db)}
}

func (r *invitationRepository) GetAll(ctx context.Context) ([]db_models.Invitation, error) {
	var invitations []db_models.Invitation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Event").
		Where("is_deleted = ?", false).
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepository) GetByEvent(ctx context.Context, eventID uint, skip, limit int) ([]db_models.Invitation, error) {
	var invitations []db_models.Invitation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Event").
		Where("event_id = ? AND is_deleted = ?", eventID, false).
		Offset(skip).
		Limit(limit).
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepository) GetByGuest(ctx context.Context, guestID uint, skip, limit int) ([]db_models.Invitation, error) {
	var invitations []db_models.Invitation
	err := r.db.WithContext(ctx).
		Preload("Guest").
		Preload("Event").
		Where("guest_id = ? AND is_deleted = ?", guestID, false).
		Offset(skip).
		Limit(limit).
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (r *invitationRepository) GetByEventAndGuest(ctx context.Context, eventID, guestID uint) (*db_models.Invitation, error) {
	var inv db_models.Invitation
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND guest_id = ? AND is_deleted = ?", eventID, guestID, false).
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

// ReactivateOrCreate inserts the invitation or, when a soft-deleted row
// holds the (guest, event) pair, revives that row in place with the new
// status, plus-ones and notes. A single conditional upsert keeps the
// existence check and the write in one statement, so a concurrent insert
// for the same pair cannot slip between them. Returns ok=false when an
// active invitation already holds the pair.
func (r *invitationRepository) ReactivateOrCreate(ctx context.Context, inv *db_models.Invitation) (*db_models.Invitation, bool, error) {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "guest_id"}, {Name: "event_id"}},
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Eq{Column: clause.Column{Table: "invitations", Name: "is_deleted"}, Value: true},
		}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_deleted": false,
			"status":     inv.Status,
			"plus_ones":  inv.PlusOnes,
			"notes":      inv.Notes,
			"updated_at": time.Now(),
		}),
	}).Create(inv)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}

	// Refetch by the unique pair: on the reactivation path the revived
	// row keeps its original id, not the one gorm assigned to inv.
	saved, err := r.GetByEventAndGuest(ctx, inv.EventID, inv.GuestID)
	if err != nil {
		return nil, false, err
	}
	return saved, true, nil
}

func (r *invitationRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Invitation{}).
		Where("event_id = ? AND is_deleted = ?", eventID, false).
		Count(&count).Error
	return count, err
}

func (r *invitationRepository) GetRSVPSummary(ctx context.Context, eventID uint) (*response_models.RSVPSummaryResponse, error) {
	var eventName string
	err := r.db.WithContext(ctx).Model(&db_models.Event{}).
		Select("name").
		Where("id = ?", eventID).
		Scan(&eventName).Error
	if err != nil {
		return nil, err
	}

	type statusCount struct {
		Status db_models.InvitationStatus
		Count  int64
	}
	var rows []statusCount
	err = r.db.WithContext(ctx).Model(&db_models.Invitation{}).
		Select("status, count(id) as count").
		Where("event_id = ? AND is_deleted = ?", eventID, false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	var totalPlusOnes int64
	err = r.db.WithContext(ctx).Model(&db_models.Invitation{}).
		Select("coalesce(sum(plus_ones), 0)").
		Where("event_id = ? AND is_deleted = ?", eventID, false).
		Scan(&totalPlusOnes).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.RSVPSummaryResponse{
		EventID:       eventID,
		EventName:     eventName,
		TotalPlusOnes: totalPlusOnes,
	}
	for _, row := range rows {
		summary.TotalInvited += row.Count
		switch row.Status {
		case db_models.InvitationConfirmed:
			summary.Confirmed = row.Count
		case db_models.InvitationDeclined:
			summary.Declined = row.Count
		case db_models.InvitationMaybe:
			summary.Maybe = row.Count
		case db_models.InvitationPending:
			summary.Pending = row.Count
		case db_models.InvitationSent:
			summary.Sent = row.Count
		}
	}
	summary.TotalExpectedAttendees = summary.Confirmed + summary.TotalPlusOnes
	return summary, nil
}
