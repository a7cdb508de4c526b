package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type TaskFilter struct {
	Status           *db_models.TaskStatus
	Priority         *db_models.TaskPriority
	EventID          *uint
	AssignedToUserID *uint
}

type TaskRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Task, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Task, error)
	GetFiltered(ctx context.Context, filter TaskFilter, skip, limit int) ([]db_models.Task, error)
	GetOverdue(ctx context.Context, assignedToUserID *uint) ([]db_models.Task, error)
	Create(ctx context.Context, task *db_models.Task) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Task, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetSummary(ctx context.Context) (*response_models.TaskSummaryResponse, error)
}

type taskRepository struct {
	*BaseRepository[db_models.Task]
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{BaseRepository: NewBaseRepository[db_models.Task](db)}
}

func (r *taskRepository) GetFiltered(ctx context.Context, filter TaskFilter, skip, limit int) ([]db_models.Task, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.AssignedToUserID != nil {
		q = q.Where("assigned_to_user_id = ?", *filter.AssignedToUserID)
	}

	var tasks []db_models.Task
	err := q.Order("due_date").Offset(skip).Limit(limit).Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetOverdue(ctx context.Context, assignedToUserID *uint) ([]db_models.Task, error) {
	q := r.db.WithContext(ctx).
		Where("is_deleted = ? AND due_date < ? AND status IN ?",
			false,
			time.Now().Format("2006-01-02"),
			[]db_models.TaskStatus{db_models.TaskPending, db_models.TaskInProgress})
	if assignedToUserID != nil {
		q = q.Where("assigned_to_user_id = ?", *assignedToUserID)
	}

	var tasks []db_models.Task
	err := q.Order("due_date").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetSummary(ctx context.Context) (*response_models.TaskSummaryResponse, error) {
	type labelCount struct {
		Label string
		Count int64
	}

	var byStatus []labelCount
	err := r.db.WithContext(ctx).Model(&db_models.Task{}).
		Select("status as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}

	var byPriority []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Task{}).
		Select("priority as label, count(id) as count").
		Where("is_deleted = ?", false).
		Group("priority").
		Scan(&byPriority).Error
	if err != nil {
		return nil, err
	}

	var overdue int64
	err = r.db.WithContext(ctx).Model(&db_models.Task{}).
		Where("is_deleted = ? AND due_date < ? AND status IN ?",
			false,
			time.Now().Format("2006-01-02"),
			[]db_models.TaskStatus{db_models.TaskPending, db_models.TaskInProgress}).
		Count(&overdue).Error
	if err != nil {
		return nil, err
	}

	var byEvent []labelCount
	err = r.db.WithContext(ctx).Model(&db_models.Task{}).
		Select("events.name as label, count(tasks.id) as count").
		Joins("JOIN events ON tasks.event_id = events.id").
		Where("tasks.is_deleted = ?", false).
		Group("events.name").
		Scan(&byEvent).Error
	if err != nil {
		return nil, err
	}

	summary := &response_models.TaskSummaryResponse{
		Overdue:    overdue,
		ByPriority: map[string]int64{},
		ByEvent:    map[string]int64{},
	}
	for _, row := range byStatus {
		summary.TotalTasks += row.Count
		switch db_models.TaskStatus(row.Label) {
		case db_models.TaskPending:
			summary.Pending = row.Count
		case db_models.TaskInProgress:
			summary.InProgress = row.Count
		case db_models.TaskCompleted:
			summary.Completed = row.Count
		case db_models.TaskCancelled:
			summary.Cancelled = row.Count
		}
	}
	for _, row := range byPriority {
		summary.ByPriority[row.Label] = row.Count
	}
	for _, row := range byEvent {
		summary.ByEvent[row.Label] = row.Count
	}
	return summary, nil
}
