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

type VendorServiceInterface interface {
	List(ctx context.Context, filter repositories.VendorFilter, skip, limit int) ([]db_models.Vendor, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.Vendor, error)
	Create(ctx context.Context, req request_models.CreateVendorRequest) (*db_models.Vendor, error)
	Update(ctx context.Context, id uint, req request_models.UpdateVendorRequest) (*db_models.Vendor, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.VendorSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.VendorExportRow, error)
}

type VendorService struct {
	vendors    repositories.VendorRepository
	categories *repositories.LookupRepository[db_models.VendorCategory]
}

func NewVendorService(vendors repositories.VendorRepository, categories *repositories.LookupRepository[db_models.VendorCategory]) VendorServiceInterface {
	return &VendorService{vendors: vendors, categories: categories}
}

func (s *VendorService) List(ctx context.Context, filter repositories.VendorFilter, skip, limit int) ([]db_models.Vendor, int64, error) {
	items, err := s.vendors.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.vendors.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *VendorService) GetByID(ctx context.Context, id uint) (*db_models.Vendor, error) {
	vendor, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vendor == nil {
		return nil, fmt.Errorf("%w: vendor not found", utils.ErrNotFound)
	}
	return vendor, nil
}

func (s *VendorService) Create(ctx context.Context, req request_models.CreateVendorRequest) (*db_models.Vendor, error) {
	if err := s.checkCategory(ctx, req.VendorCategoryID); err != nil {
		return nil, err
	}

	vendor := &db_models.Vendor{
		Name:             req.Name,
		VendorCategoryID: req.VendorCategoryID,
		ContactPerson:    req.ContactPerson,
		Phone:            req.Phone,
		Email:            req.Email,
		Website:          req.Website,
		Address:          req.Address,
		Notes:            req.Notes,
	}
	if req.IsBooked != nil {
		vendor.IsBooked = *req.IsBooked
	}

	if err := s.vendors.Create(ctx, vendor); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return vendor, nil
}

func (s *VendorService) Update(ctx context.Context, id uint, req request_models.UpdateVendorRequest) (*db_models.Vendor, error) {
	existing, err := s.vendors.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: vendor not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.VendorCategoryID != nil {
		if err := s.checkCategory(ctx, *req.VendorCategoryID); err != nil {
			return nil, err
		}
		fields["vendor_category_id"] = *req.VendorCategoryID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}
	if req.IsBooked != nil {
		fields["is_booked"] = *req.IsBooked
	}

	updated, err := s.vendors.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *VendorService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.vendors.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: vendor not found", utils.ErrNotFound)
	}
	return nil
}

func (s *VendorService) GetSummary(ctx context.Context) (*response_models.VendorSummaryResponse, error) {
	summary, err := s.vendors.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *VendorService) ExportRows(ctx context.Context) ([]response_models.VendorExportRow, error) {
	vendors, err := s.vendors.GetFiltered(ctx, repositories.VendorFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	categoryNames, err := lookupNames(ctx, s.categories)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.VendorExportRow, 0, len(vendors))
	for _, v := range vendors {
		rows = append(rows, response_models.VendorExportRow{
			ID:            v.ID,
			Name:          v.Name,
			Category:      nameFor(categoryNames, v.VendorCategoryID),
			ContactPerson: strDeref(v.ContactPerson),
			Phone:         strDeref(v.Phone),
			Email:         strDeref(v.Email),
			Website:       strDeref(v.Website),
			IsBooked:      v.IsBooked,
			Notes:         strDeref(v.Notes),
		})
	}
	return rows, nil
}

func (s *VendorService) checkCategory(ctx context.Context, id uint) error {
	item, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return fmt.Errorf("%w: vendor category not found", utils.ErrNotFound)
	}
	return nil
}
