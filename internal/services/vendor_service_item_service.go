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

type VendorServiceItemServiceInterface interface {
	List(ctx context.Context, filter repositories.VendorServiceFilter, skip, limit int) ([]db_models.VendorServiceItem, int64, error)
	GetByID(ctx context.Context, id uint) (*db_models.VendorServiceItem, error)
	Create(ctx context.Context, req request_models.CreateVendorServiceRequest) (*db_models.VendorServiceItem, error)
	Update(ctx context.Context, id uint, req request_models.UpdateVendorServiceRequest) (*db_models.VendorServiceItem, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.VendorServiceSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.VendorServiceExportRow, error)
}

type VendorServiceItemService struct {
	items   repositories.VendorServiceRepository
	vendors repositories.VendorRepository
	events  repositories.EventRepository
}

func NewVendorServiceItemService(
	items repositories.VendorServiceRepository,
	vendors repositories.VendorRepository,
	events repositories.EventRepository,
) VendorServiceItemServiceInterface {
	return &VendorServiceItemService{items: items, vendors: vendors, events: events}
}

func (s *VendorServiceItemService) List(ctx context.Context, filter repositories.VendorServiceFilter, skip, limit int) ([]db_models.VendorServiceItem, int64, error) {
	items, err := s.items.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.items.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *VendorServiceItemService) GetByID(ctx context.Context, id uint) (*db_models.VendorServiceItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, fmt.Errorf("%w: vendor service not found", utils.ErrNotFound)
	}
	return item, nil
}

func (s *VendorServiceItemService) Create(ctx context.Context, req request_models.CreateVendorServiceRequest) (*db_models.VendorServiceItem, error) {
	if err := s.checkRefs(ctx, req.VendorID, req.EventID); err != nil {
		return nil, err
	}

	serviceDate, err := utils.ParseDatePtr(req.ServiceDate)
	if err != nil {
		return nil, err
	}
	startTime, err := utils.ValidateTimePtr(req.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := utils.ValidateTimePtr(req.EndTime)
	if err != nil {
		return nil, err
	}

	item := &db_models.VendorServiceItem{
		Title:       req.Title,
		Description: req.Description,
		VendorID:    req.VendorID,
		EventID:     req.EventID,
		ServiceDate: serviceDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Amount:      req.Amount,
		Status:      db_models.ServicePending,
		Notes:       req.Notes,
	}
	if req.Status != nil {
		item.Status = db_models.VendorServiceStatus(*req.Status)
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return item, nil
}

func (s *VendorServiceItemService) Update(ctx context.Context, id uint, req request_models.UpdateVendorServiceRequest) (*db_models.VendorServiceItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: vendor service not found", utils.ErrNotFound)
	}

	if err := s.checkRefs(ctx, req.VendorID, req.EventID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.VendorID != nil {
		fields["vendor_id"] = *req.VendorID
	}
	if req.EventID != nil {
		fields["event_id"] = *req.EventID
	}
	if req.ServiceDate != nil {
		serviceDate, err := utils.ParseDatePtr(req.ServiceDate)
		if err != nil {
			return nil, err
		}
		fields["service_date"] = serviceDate
	}
	if req.StartTime != nil {
		startTime, err := utils.ValidateTimePtr(req.StartTime)
		if err != nil {
			return nil, err
		}
		fields["start_time"] = startTime
	}
	if req.EndTime != nil {
		endTime, err := utils.ValidateTimePtr(req.EndTime)
		if err != nil {
			return nil, err
		}
		fields["end_time"] = endTime
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.items.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *VendorServiceItemService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.items.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: vendor service not found", utils.ErrNotFound)
	}
	return nil
}

func (s *VendorServiceItemService) GetSummary(ctx context.Context) (*response_models.VendorServiceSummaryResponse, error) {
	summary, err := s.items.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *VendorServiceItemService) ExportRows(ctx context.Context) ([]response_models.VendorServiceExportRow, error) {
	items, err := s.items.GetFiltered(ctx, repositories.VendorServiceFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	vendors, err := s.vendors.GetFiltered(ctx, repositories.VendorFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	vendorNames := make(map[uint]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}

	events, err := s.events.GetFiltered(ctx, repositories.EventFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	eventNames := make(map[uint]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
	}

	rows := make([]response_models.VendorServiceExportRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, response_models.VendorServiceExportRow{
			ID:          item.ID,
			Title:       item.Title,
			Vendor:      nameForPtr(vendorNames, item.VendorID),
			Event:       nameForPtr(eventNames, item.EventID),
			ServiceDate: item.ServiceDate,
			StartTime:   strDeref(item.StartTime),
			EndTime:     strDeref(item.EndTime),
			Amount:      item.Amount,
			Status:      string(item.Status),
			Notes:       strDeref(item.Notes),
		})
	}
	return rows, nil
}

func (s *VendorServiceItemService) checkRefs(ctx context.Context, vendorID, eventID *uint) error {
	if vendorID != nil {
		vendor, err := s.vendors.GetByID(ctx, *vendorID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if vendor == nil {
			return fmt.Errorf("%w: vendor not found", utils.ErrNotFound)
		}
	}
	if eventID != nil {
		event, err := s.events.GetByID(ctx, *eventID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if event == nil {
			return fmt.Errorf("%w: event not found", utils.ErrNotFound)
		}
	}
	return nil
}
