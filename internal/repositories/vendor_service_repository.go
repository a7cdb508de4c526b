package repositories

import (
	"context"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type VendorServiceFilter struct {
	VendorID   *uint
	EventID    *uint
	Status     *db_models.VendorServiceStatus
	Unassigned bool
}

type VendorServiceRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.VendorServiceItem, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.VendorServiceItem, error)
	GetFiltered(ctx context.Context, filter VendorServiceFilter, skip, limit int) ([]db_models.VendorServiceItem, error)
	Create(ctx context.Context, item *db_models.VendorServiceItem) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.VendorServiceItem, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.VendorServiceSummaryResponse, error)
}

type vendorServiceRepository struct {
	*BaseRepository[db_models.VendorServiceItem]
}

func NewVendorServiceRepository(db *gorm.DB) VendorServiceRepository {
	return &vendorServiceRepository{BaseRepository: NewBaseRepository[db_models.VendorServiceItem](db)}
}

func (r *vendorServiceRepository) GetFiltered(ctx context.Context, filter VendorServiceFilter, skip, limit int) ([]db_models.VendorServiceItem, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.VendorID != nil {
		q = q.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Unassigned {
		q = q.Where("vendor_id IS NULL")
	}

	var items []db_models.VendorServiceItem
	err := q.Order("service_date").Offset(skip).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *vendorServiceRepository) GetSummary(ctx context.Context) (*response_models.VendorServiceSummaryResponse, error) {
	type labelCount struct {
		Label string
		Count int64
	}

	var byStatus []labelCount
	err := r.db.WithContext(ctx).Model(&db_models.VendorServiceItem{}).
		Select("status as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}

	var unassigned int64
	err = r.db.WithContext(ctx).Model(&db_models.VendorServiceItem{}).
		Where("is_deleted = ? AND vendor_id IS NULL", false).
		Count(&unassigned).Error
	if err != nil {
		return nil, err
	}

	var allEvents int64
	err = r.db.WithContext(ctx).Model(&db_models.VendorServiceItem{}).
		Where("is_deleted = ? AND event_id IS NULL", false).
		Count(&allEvents).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.VendorServiceSummaryResponse{
		ByStatus:        map[string]int64{},
		UnassignedCount: unassigned,
		AllEventsCount:  allEvents,
	}
	for _, row := range byStatus {
		summary.ByStatus[row.Label] = row.Count
		summary.Total += row.Count
	}
	return summary, nil
}
