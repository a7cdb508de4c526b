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

type EventServiceInterface interface {
	List(ctx context.Context, filter repositories.EventFilter, skip, limit int) ([]db_models.Event, int64, error)
	ListUpcoming(ctx context.Context, skip, limit int) ([]db_models.Event, error)
	GetByID(ctx context.Context, id uint) (*db_models.Event, error)
	Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error)
	Update(ctx context.Context, id uint, req request_models.UpdateEventRequest) (*db_models.Event, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.EventSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.EventExportRow, error)
}

type EventService struct {
	events     repositories.EventRepository
	eventTypes *repositories.LookupRepository[db_models.EventType]
}

func NewEventService(events repositories.EventRepository, eventTypes *repositories.LookupRepository[db_models.EventType]) EventServiceInterface {
	return &EventService{events: events, eventTypes: eventTypes}
}

func (s *EventService) List(ctx context.Context, filter repositories.EventFilter, skip, limit int) ([]db_models.Event, int64, error) {
	items, err := s.events.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.events.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *EventService) ListUpcoming(ctx context.Context, skip, limit int) ([]db_models.Event, error) {
	items, err := s.events.GetUpcoming(ctx, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *EventService) GetByID(ctx context.Context, id uint) (*db_models.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event not found", utils.ErrNotFound)
	}
	return event, nil
}

func (s *EventService) Create(ctx context.Context, req request_models.CreateEventRequest) (*db_models.Event, error) {
	if err := s.checkEventType(ctx, req.EventTypeID); err != nil {
		return nil, err
	}

	eventDate, err := utils.ParseDate(req.EventDate)
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

	event := &db_models.Event{
		Name:         req.Name,
		EventTypeID:  req.EventTypeID,
		Description:  req.Description,
		VenueName:    req.VenueName,
		VenueAddress: req.VenueAddress,
		EventDate:    eventDate,
		StartTime:    startTime,
		EndTime:      endTime,
		Status:       db_models.EventUpcoming,
	}
	if req.Status != nil {
		event.Status = db_models.EventStatus(*req.Status)
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id uint, req request_models.UpdateEventRequest) (*db_models.Event, error) {
	existing, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: event not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.EventTypeID != nil {
		if err := s.checkEventType(ctx, *req.EventTypeID); err != nil {
			return nil, err
		}
		fields["event_type_id"] = *req.EventTypeID
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.VenueName != nil {
		fields["venue_name"] = *req.VenueName
	}
	if req.VenueAddress != nil {
		fields["venue_address"] = *req.VenueAddress
	}
	if req.EventDate != nil {
		eventDate, err := utils.ParseDate(*req.EventDate)
		if err != nil {
			return nil, err
		}
		fields["event_date"] = eventDate
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
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	updated, err := s.events.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: event not found", utils.ErrNotFound)
	}
	return nil
}

func (s *EventService) GetSummary(ctx context.Context) (*response_models.EventSummaryResponse, error) {
	summary, err := s.events.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *EventService) ExportRows(ctx context.Context) ([]response_models.EventExportRow, error) {
	events, err := s.events.GetFiltered(ctx, repositories.EventFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	typeNames, err := lookupNames(ctx, s.eventTypes)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.EventExportRow, 0, len(events))
	for _, e := range events {
		rows = append(rows, response_models.EventExportRow{
			ID:           e.ID,
			Name:         e.Name,
			EventType:    nameFor(typeNames, e.EventTypeID),
			EventDate:    e.EventDate,
			StartTime:    strDeref(e.StartTime),
			EndTime:      strDeref(e.EndTime),
			VenueName:    strDeref(e.VenueName),
			VenueAddress: strDeref(e.VenueAddress),
			Status:       string(e.Status),
		})
	}
	return rows, nil
}

func (s *EventService) checkEventType(ctx context.Context, id uint) error {
	item, err := s.eventTypes.GetByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return fmt.Errorf("%w: event type not found", utils.ErrNotFound)
	}
	return nil
}
