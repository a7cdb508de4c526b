package repositories

import (
	"context"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type VendorFilter struct {
	VendorCategoryID *uint
	IsBooked         *bool
}

type VendorRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Vendor, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Vendor, error)
	GetFiltered(ctx context.Context, filter VendorFilter, skip, limit int) ([]db_models.Vendor, error)
	Create(ctx context.Context, vendor *db_models.Vendor) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Vendor, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.VendorSummaryResponse, error)
}

type vendorRepository struct {
	*BaseRepository[db_models.Vendor]
}

func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{BaseRepository: NewBaseRepository[db_models.Vendor](db)}
}

func (r *vendorRepository) GetFiltered(ctx context.Context, filter VendorFilter, skip, limit int) ([]db_models.Vendor, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.VendorCategoryID != nil {
		q = q.Where("vendor_category_id = ?", *filter.VendorCategoryID)
	}
	if filter.IsBooked != nil {
		q = q.Where("is_booked = ?", *filter.IsBooked)
	}

	var vendors []db_models.Vendor
	err := q.Order("name").Offset(skip).Limit(limit).Find(&vendors).Error
	if err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *vendorRepository) GetSummary(ctx context.Context) (*response_models.VendorSummaryResponse, error) {
	type labelCount struct {
		Label string
		Count int64
	}

	var byCategory []labelCount
	err := r.db.WithContext(ctx).Model(&db_models.Vendor{}).
		Select("vendor_categories.name as label, count(vendors.id) as count").
		Joins("JOIN vendor_categories ON vendors.vendor_category_id = vendor_categories.id").
		Where("vendors.is_deleted = ?", false).
		Group("vendor_categories.name").
		Scan(&byCategory).Error
	if err != nil {
		return nil, err
	}

	var booked int64
	err = r.db.WithContext(ctx).Model(&db_models.Vendor{}).
		Where("is_deleted = ? AND is_booked = ?", false, true).
		Count(&booked).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.VendorSummaryResponse{
		Booked:     booked,
		ByCategory: map[string]int64{},
	}
	for _, row := range byCategory {
		summary.ByCategory[row.Label] = row.Count
		summary.TotalVendors += row.Count
	}
	summary.NotBooked = summary.TotalVendors - booked
	return summary, nil
}
