package repositories

import (
	"context"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type GiftFilter struct {
	GuestID    *uint
	GiftTypeID *uint
}

type GiftRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Gift, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Gift, error)
	GetFiltered(ctx context.Context, filter GiftFilter, skip, limit int) ([]db_models.Gift, error)
	GetThankYouPending(ctx context.Context) ([]db_models.Gift, error)
	Create(ctx context.Context, gift *db_models.Gift) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Gift, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.GiftSummaryResponse, error)
}

type giftRepository struct {
	*BaseRepository[db_models.Gift]
}

func NewGiftRepository(db *gorm.DB) GiftRepository {
	return &giftRepository{BaseRepository: NewBaseRepository[db_models.Gift](db)}
}

func (r *giftRepository) GetFiltered(ctx context.Context, filter GiftFilter, skip, limit int) ([]db_models.Gift, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.GuestID != nil {
		q = q.Where("guest_id = ?", *filter.GuestID)
	}
	if filter.GiftTypeID != nil {
		q = q.Where("gift_type_id = ?", *filter.GiftTypeID)
	}

	var gifts []db_models.Gift
	err := q.Offset(skip).Limit(limit).Find(&gifts).Error
	if err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *giftRepository) GetThankYouPending(ctx context.Context) ([]db_models.Gift, error) {
	var gifts []db_models.Gift
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND thank_you_sent = ?", false, false).
		Find(&gifts).Error
	if err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *giftRepository) GetSummary(ctx context.Context) (*response_models.GiftSummaryResponse, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&db_models.Gift{}).
		Where("is_deleted = ?", false).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	var totalValue float64
	err = r.db.WithContext(ctx).Model(&db_models.Gift{}).
		Select("coalesce(sum(estimated_value), 0)").
		Where("is_deleted = ?", false).
		Scan(&totalValue).Error
	if err != nil {
		return nil, err
	}

	type labelCount struct {
		Label string
		Count int64
	}
	var byType []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Gift{}).
		Select("gift_types.name as label, count(gifts.id) as count").
		Joins("JOIN gift_types ON gifts.gift_type_id = gift_types.id").
		Where("gifts.is_deleted = ?", false).
		Group("gift_types.name").
		Scan(&byType).Error
	if err != nil {
		return nil, err
	}

	var thankYouPending int64
	err = r.db.WithContext(ctx).Model(&db_models.Gift{}).
		Where("is_deleted = ? AND thank_you_sent = ?", false, false).
		Count(&thankYouPending).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.GiftSummaryResponse{
		TotalGifts:      total,
		TotalValue:      totalValue,
		ByGiftType:      map[string]int64{},
		ThankYouPending: thankYouPending,
	}
	for _, row := range byType {
		summary.ByGiftType[row.Label] = row.Count
	}
	return summary, nil
}
