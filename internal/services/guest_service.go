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

type GuestServiceInterface interface {
	List(ctx context.Context, filter repositories.GuestFilter, skip, limit int) ([]db_models.Guest, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Guest, error)
	Create(ctx context.Context, req request_models.CreateGuestRequest) (*db_models.Guest, error)
	Update(ctx context.Context, id uint, req request_models.UpdateGuestRequest) (*db_models.Guest, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.GuestSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.GuestExportRow, error)
}

type GuestService struct {
	guests      repositories.GuestRepository
	dietary     *repositories.LookupRepository[db_models.DietaryPreference]
	relations   *repositories.LookupRepository[db_models.RelationType]
	familyGroup *repositories.LookupRepository[db_models.FamilyGroup]
}

func NewGuestService(
	guests repositories.GuestRepository,
	dietary *repositories.LookupRepository[db_models.DietaryPreference],
	relations *repositories.LookupRepository[db_models.RelationType],
	familyGroup *repositories.LookupRepository[db_models.FamilyGroup],
) GuestServiceInterface {
	return &GuestService{guests: guests, dietary: dietary, relations: relations, familyGroup: familyGroup}
}

func (s *GuestService) List(ctx context.Context, filter repositories.GuestFilter, skip, limit int) ([]db_models.Guest, int64, error) {
	items, err := s.guests.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.guests.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *GuestService) GetByID(ctx context.Context, id uint) (*db_models.Guest, error) {
	guest, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if guest == nil {
		return nil, fmt.Errorf("%w: guest not found", utils.ErrNotFound)
	}
	return guest, nil
}

func (s *GuestService) Create(ctx context.Context, req request_models.CreateGuestRequest) (*db_models.Guest, error) {
	existing, err := s.guests.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: phone number already in use", utils.ErrConflict)
	}
	if req.Email != nil {
		byEmail, err := s.guests.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if byEmail != nil {
			return nil, fmt.Errorf("%w: email already in use", utils.ErrConflict)
		}
	}

	if err := s.checkLookups(ctx, req.DietaryPreferenceID, req.RelationTypeID, req.FamilyGroupID); err != nil {
		return nil, err
	}

	arrival, err := utils.ParseDateTimePtr(req.ArrivalAt)
	if err != nil {
		return nil, err
	}
	departure, err := utils.ParseDateTimePtr(req.DepartureAt)
	if err != nil {
		return nil, err
	}

	guest := &db_models.Guest{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		Side:                db_models.GuestSide(req.Side),
		RelationTypeID:      req.RelationTypeID,
		FamilyGroupID:       req.FamilyGroupID,
		DietaryPreferenceID: req.DietaryPreferenceID,
		AgeGroup:            db_models.AgeAdult,
		NumberOfPersons:     req.NumberOfPersons,
		RoomNumber:          req.RoomNumber,
		Floor:               req.Floor,
		ArrivalAt:           arrival,
		DepartureAt:         departure,
		Notes:               req.Notes,
	}
	if req.AgeGroup != nil {
		guest.AgeGroup = db_models.AgeGroup(*req.AgeGroup)
	}
	if req.IsVIP != nil {
		guest.IsVIP = *req.IsVIP
	}
	if guest.NumberOfPersons == nil {
		one := 1
		guest.NumberOfPersons = &one
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return guest, nil
}

func (s *GuestService) Update(ctx context.Context, id uint, req request_models.UpdateGuestRequest) (*db_models.Guest, error) {
	existing, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: guest not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.Phone != nil && *req.Phone != existing.Phone {
		byPhone, err := s.guests.FindByPhone(ctx, *req.Phone)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if byPhone != nil {
			return nil, fmt.Errorf("%w: phone number already in use", utils.ErrConflict)
		}
		fields["phone"] = *req.Phone
	}
	if req.Email != nil && (existing.Email == nil || *req.Email != *existing.Email) {
		byEmail, err := s.guests.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if byEmail != nil {
			return nil, fmt.Errorf("%w: email already in use", utils.ErrConflict)
		}
		fields["email"] = *req.Email
	}

	if err := s.checkLookups(ctx, req.DietaryPreferenceID, req.RelationTypeID, req.FamilyGroupID); err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Side != nil {
		fields["side"] = *req.Side
	}
	if req.RelationTypeID != nil {
		fields["relation_type_id"] = *req.RelationTypeID
	}
	if req.FamilyGroupID != nil {
		fields["family_group_id"] = *req.FamilyGroupID
	}
	if req.DietaryPreferenceID != nil {
		fields["dietary_preference_id"] = *req.DietaryPreferenceID
	}
	if req.AgeGroup != nil {
		fields["age_group"] = *req.AgeGroup
	}
	if req.NumberOfPersons != nil {
		fields["number_of_persons"] = *req.NumberOfPersons
	}
	if req.RoomNumber != nil {
		fields["room_number"] = *req.RoomNumber
	}
	if req.Floor != nil {
		fields["floor"] = *req.Floor
	}
	if req.ArrivalAt != nil {
		arrival, err := utils.ParseDateTimePtr(req.ArrivalAt)
		if err != nil {
			return nil, err
		}
		fields["arrival_at"] = arrival
	}
	if req.DepartureAt != nil {
		departure, err := utils.ParseDateTimePtr(req.DepartureAt)
		if err != nil {
			return nil, err
		}
		fields["departure_at"] = departure
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.IsVIP != nil {
		fields["is_vip"] = *req.IsVIP
	}

	updated, err := s.guests.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *GuestService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.guests.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: guest not found", utils.ErrNotFound)
	}
	return nil
}

func (s *GuestService) GetSummary(ctx context.Context) (*response_models.GuestSummaryResponse, error) {
	summary, err := s.guests.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *GuestService) ExportRows(ctx context.Context) ([]response_models.GuestExportRow, error) {
	guests, err := s.guests.GetFiltered(ctx, repositories.GuestFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	relationNames, err := lookupNames(ctx, s.relations)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	familyNames, err := lookupNames(ctx, s.familyGroup)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	dietaryNames, err := lookupNames(ctx, s.dietary)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.GuestExportRow, 0, len(guests))
	for _, g := range guests {
		persons := 1
		if g.NumberOfPersons != nil {
			persons = *g.NumberOfPersons
		}
		rows = append(rows, response_models.GuestExportRow{
			ID:                g.ID,
			FirstName:         g.FirstName,
			LastName:          g.LastName,
			Email:             strDeref(g.Email),
			Phone:             g.Phone,
			Side:              string(g.Side),
			RelationType:      nameForPtr(relationNames, g.RelationTypeID),
			FamilyGroup:       nameForPtr(familyNames, g.FamilyGroupID),
			DietaryPreference: nameForPtr(dietaryNames, g.DietaryPreferenceID),
			AgeGroup:          string(g.AgeGroup),
			NumberOfPersons:   persons,
			RoomNumber:        strDeref(g.RoomNumber),
			Floor:             strDeref(g.Floor),
			ArrivalAt:         g.ArrivalAt,
			DepartureAt:       g.DepartureAt,
			IsVIP:             g.IsVIP,
			Notes:             strDeref(g.Notes),
		})
	}
	return rows, nil
}

func (s *GuestService) checkLookups(ctx context.Context, dietaryID, relationID, familyID *uint) error {
	if dietaryID != nil {
		item, err := s.dietary.GetByID(ctx, *dietaryID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if item == nil {
			return fmt.Errorf("%w: dietary preference not found", utils.ErrNotFound)
		}
	}
	if relationID != nil {
		item, err := s.relations.GetByID(ctx, *relationID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if item == nil {
			return fmt.Errorf("%w: relation type not found", utils.ErrNotFound)
		}
	}
	if familyID != nil {
		item, err := s.familyGroup.GetByID(ctx, *familyID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if item == nil {
			return fmt.Errorf("%w: family group not found", utils.ErrNotFound)
		}
	}
	return nil
}
