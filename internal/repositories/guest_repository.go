package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type GuestFilter struct {
	Side                *db_models.GuestSide
	FamilyGroupID       *uint
	IsVIP               *bool
	DietaryPreferenceID *uint
}

type GuestRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Guest, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Guest, error)
	GetFiltered(ctx context.Context, filter GuestFilter, skip, limit int) ([]db_models.Guest, error)
	Create(ctx context.Context, guest *db_models.Guest) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Guest, error)
	Delete(ctx context.Context, id uint) (bool, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Guest, error)
	FindByPhone(ctx context.Context, phone string) (*db_models.Guest, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.GuestSummaryResponse, error)
}

type guestRepository struct {
	*BaseRepository[db_models.Guest]
}

func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{BaseRepository: NewBaseRepository[db_models.Guest](db)}
}

func (r *guestRepository) GetFiltered(ctx context.Context, filter GuestFilter, skip, limit int) ([]db_models.Guest, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.Side != nil {
		q = q.Where("side = ?", *filter.Side)
	}
	if filter.FamilyGroupID != nil {
		q = q.Where("family_group_id = ?", *filter.FamilyGroupID)
	}
	if filter.IsVIP != nil {
		q = q.Where("is_vip = ?", *filter.IsVIP)
	}
	if filter.DietaryPreferenceID != nil {
		q = q.Where("dietary_preference_id = ?", *filter.DietaryPreferenceID)
	}

	var guests []db_models.Guest
	err := q.Order("first_name").Offset(skip).Limit(limit).Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *guestRepository) FindByEmail(ctx context.Context, email string) (*db_models.Guest, error) {
	var guest db_models.Guest
	err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) FindByPhone(ctx context.Context, phone string) (*db_models.Guest, error) {
	var guest db_models.Guest
	err := r.db.WithContext(ctx).
		Where("phone = ? AND is_deleted = ?", phone, false).
		First(&guest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) GetSummary(ctx context.Context) (*response_models.GuestSummaryResponse, error) {
	type labelCount struct {
		Label string
		Count int64
	}

	var bySide []labelCount
	err := r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Select("side as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("side").
		Scan(&bySide).Error
	if err != nil {
		return nil, err
	}

	var byDiet []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Select("dietary_preferences.name as label, count(guests.id) as count").
		Joins("JOIN dietary_preferences ON guests.dietary_preference_id = dietary_preferences.id").
		Where("guests.is_deleted = ?", false).
		Group("dietary_preferences.name").
		Scan(&byDiet).Error
	if err != nil {
		return nil, err
	}

	var byAge []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Select("age_group as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("age_group").
		Scan(&byAge).Error
	if err != nil {
		return nil, err
	}

	var vipCount int64
	err = r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Where("is_deleted = ? AND is_vip = ?", false, true).
		Count(&vipCount).Error
	if err != nil {
		return nil, err
	}

	var familyGroups int64
	err = r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Where("is_deleted = ? AND family_group_id IS NOT NULL", false).
		Distinct("family_group_id").
		Count(&familyGroups).Error
	if err != nil {
		return nil, err
	}

	var totalPersons int64
	err = r.db.WithContext(ctx).Model(&db_models.Guest{}).
		Select("coalesce(sum(number_of_persons), 0)").
		Where("is_deleted = ?", false).
		Scan(&totalPersons).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.GuestSummaryResponse{
		BySide:              map[string]int64{},
		ByDietaryPreference: map[string]int64{},
		ByAgeGroup:          map[string]int64{},
		VIPCount:            vipCount,
		FamilyGroupsCount:   familyGroups,
		TotalPersons:        totalPersons,
	}
	for _, row := range bySide {
		summary.BySide[row.Label] = row.Count
		summary.TotalGuests += row.Count
	}
	for _, row := range byDiet {
		summary.ByDietaryPreference[row.Label] = row.Count
	}
	for _, row := range byAge {
		summary.ByAgeGroup[row.Label] = row.Count
	}
	return summary, nil
}
