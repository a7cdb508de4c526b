package services

import (
	"context"
	"fmt"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type GiftServiceInterface interface {
	List(ctx context.Context, filter repositories.GiftFilter, skip, limit int) ([]db_models.Gift, int64, error)
	ListThankYouPending(ctx context.Context) ([]db_models.Gift, error)
	GetByID(ctx context.Context, id uint) (*db_models.Gift, error)
	Create(ctx context.Context, req request_models.CreateGiftRequest) (*db_models.Gift, error)
	Update(ctx context.Context, id uint, req request_models.UpdateGiftRequest) (*db_models.Gift, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.GiftSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.GiftExportRow, error)
}

type GiftService struct {
	gifts     repositories.GiftRepository
	guests    repositories.GuestRepository
	giftTypes *repositories.LookupRepository[db_models.GiftType]
}

func NewGiftService(
	gifts repositories.GiftRepository,
	guests repositories.GuestRepository,
	giftTypes *repositories.LookupRepository[db_models.GiftType],
) GiftServiceInterface {
	return &GiftService{gifts: gifts, guests: guests, giftTypes: giftTypes}
}

func (s *GiftService) List(ctx context.Context, filter repositories.GiftFilter, skip, limit int) ([]db_models.Gift, int64, error) {
	items, err := s.gifts.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.gifts.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *GiftService) ListThankYouPending(ctx context.Context) ([]db_models.Gift, error) {
	items, err := s.gifts.GetThankYouPending(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *GiftService) GetByID(ctx context.Context, id uint) (*db_models.Gift, error) {
	gift, err := s.gifts.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if gift == nil {
		return nil, fmt.Errorf("%w: gift not found", utils.ErrNotFound)
	}
	return gift, nil
}

func (s *GiftService) Create(ctx context.Context, req request_models.CreateGiftRequest) (*db_models.Gift, error) {
	if err := s.checkRefs(ctx, &req.GuestID, &req.GiftTypeID); err != nil {
		return nil, err
	}

	receivedAt, err := utils.ParseDatePtr(req.ReceivedAt)
	if err != nil {
		return nil, err
	}

	gift := &db_models.Gift{
		GuestID:        req.GuestID,
		GiftTypeID:     req.GiftTypeID,
		Description:    req.Description,
		EstimatedValue: req.EstimatedValue,
		ReceivedAt:     receivedAt,
		Notes:          req.Notes,
	}
	if req.ThankYouSent != nil {
		gift.ThankYouSent = *req.ThankYouSent
	}

	if err := s.gifts.Create(ctx, gift); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return gift, nil
}

func (s *GiftService) Update(ctx context.Context, id uint, req request_models.UpdateGiftRequest) (*db_models.Gift, error) {
	existing, err := s.gifts.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: gift not found", utils.ErrNotFound)
	}

	if err := s.checkRefs(ctx, req.GuestID, req.GiftTypeID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.GuestID != nil {
		fields["guest_id"] = *req.GuestID
	}
	if req.GiftTypeID != nil {
		fields["gift_type_id"] = *req.GiftTypeID
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.EstimatedValue != nil {
		fields["estimated_value"] = *req.EstimatedValue
	}
	if req.ReceivedAt != nil {
		receivedAt, err := utils.ParseDatePtr(req.ReceivedAt)
		if err != nil {
			return nil, err
		}
		fields["received_at"] = receivedAt
	}
	if req.ThankYouSent != nil {
		fields["thank_you_sent"] = *req.ThankYouSent
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.gifts.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *GiftService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.gifts.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: gift not found", utils.ErrNotFound)
	}
	return nil
}

func (s *GiftService) GetSummary(ctx context.Context) (*response_models.GiftSummaryResponse, error) {
	summary, err := s.gifts.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *GiftService) ExportRows(ctx context.Context) ([]response_models.GiftExportRow, error) {
	gifts, err := s.gifts.GetFiltered(ctx, repositories.GiftFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	typeNames, err := lookupNames(ctx, s.giftTypes)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	guests, err := s.guests.GetFiltered(ctx, repositories.GuestFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	guestNames := make(map[uint]string, len(guests))
	for _, g := range guests {
		guestNames[g.ID] = g.FirstName + " " + g.LastName
	}

	rows := make([]response_models.GiftExportRow, 0, len(gifts))
	for _, g := range gifts {
		value := 0.0
		if g.EstimatedValue != nil {
			value = *g.EstimatedValue
		}
		rows = append(rows, response_models.GiftExportRow{
			ID:             g.ID,
			Guest:          nameFor(guestNames, g.GuestID),
			GiftType:       nameFor(typeNames, g.GiftTypeID),
			Description:    strDeref(g.Description),
			EstimatedValue: value,
			ReceivedAt:     g.ReceivedAt,
			ThankYouSent:   g.ThankYouSent,
			Notes:          strDeref(g.Notes),
		})
	}
	return rows, nil
}

func (s *GiftService) checkRefs(ctx context.Context, guestID, giftTypeID *uint) error {
	if guestID != nil {
		guest, err := s.guests.GetByID(ctx, *guestID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if guest == nil {
			return fmt.Errorf("%w: guest not found", utils.ErrNotFound)
		}
	}
	if giftTypeID != nil {
		item, err := s.giftTypes.GetByID(ctx, *giftTypeID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if item == nil {
			return fmt.Errorf("%w: gift type not found", utils.ErrNotFound)
		}
	}
	return nil
}
