package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type EventFilter struct {
	Status      *db_models.EventStatus
	EventTypeID *uint
}

type EventRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Event, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Event, error)
	GetFiltered(ctx context.Context, filter EventFilter, skip, limit int) ([]db_models.Event, error)
	GetUpcoming(ctx context.Context, skip, limit int) ([]db_models.Event, error)
	Create(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Event, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.EventSummaryResponse, error)
}

type eventRepository struct {
	*BaseRepository[db_models.Event]
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{BaseRepository: NewBaseRepository[db_models.Event](db)}
}

func (r *eventRepository) GetFiltered(ctx context.Context, filter EventFilter, skip, limit int) ([]db_models.Event, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.EventTypeID != nil {
		q = q.Where("event_type_id = ?", *filter.EventTypeID)
	}

	var events []db_models.Event
	err := q.Order("event_date").Offset(skip).Limit(limit).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetUpcoming(ctx context.Context, skip, limit int) ([]db_models.Event, error) {
	var events []db_models.Event
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND event_date >= ? AND status = ?",
			false, time.Now().Format("2006-01-02"), db_models.EventUpcoming).
		Order("event_date").
		Offset(skip).
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) GetSummary(ctx context.Context) (*response_models.EventSummaryResponse, error) {
	type labelCount struct {
		Label string
		Count int64
	}

	var byStatus []labelCount
	err := r.db.WithContext(ctx).Model(&db_models.Event{}).
		Select("status as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}

	var byType []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Event{}).
		Select("event_types.name as label, count(events.id) as count").
		Joins("JOIN event_types ON events.event_type_id = event_types.id").
		Where("events.is_deleted = ?", false).
		Group("event_types.name").
		Scan(&byType).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.EventSummaryResponse{
		ByStatus: map[string]int64{},
		ByType:   map[string]int64{},
	}
	for _, row := range byStatus {
		summary.ByStatus[row.Label] = row.Count
		summary.TotalEvents += row.Count
	}
	for _, row := range byType {
		summary.ByType[row.Label] = row.Count
	}
	return summary, nil
}
