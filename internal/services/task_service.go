package services

import (
	"context"
	"fmt"
	"time"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type TaskServiceInterface interface {
	List(ctx context.Context, filter repositories.TaskFilter, skip, limit int) ([]db_models.Task, int64, error)
	ListOverdue(ctx context.Context, caller *db_models.User) ([]db_models.Task, error)
	ListMine(ctx context.Context, userID uint, skip, limit int) ([]db_models.Task, error)
	GetByID(ctx context.Context, id uint) (*db_models.Task, error)
	Create(ctx context.Context, req request_models.CreateTaskRequest, createdBy uint) (*db_models.Task, error)
	Update(ctx context.Context, id uint, req request_models.UpdateTaskRequest) (*db_models.Task, error)
	UpdateAsAssignee(ctx context.Context, id uint, userID uint, req request_models.UpdateMyTaskRequest) (*db_models.Task, error)
	Delete(ctx context.Context, id uint) error
	GetSummary(ctx context.Context) (*response_models.TaskSummaryResponse, error)
	ExportRows(ctx context.Context) ([]response_models.TaskExportRow, error)
}

type TaskService struct {
	tasks  repositories.TaskRepository
	events repositories.EventRepository
	users  repositories.UserRepository
}

func NewTaskService(tasks repositories.TaskRepository, events repositories.EventRepository, users repositories.UserRepository) TaskServiceInterface {
	return &TaskService{tasks: tasks, events: events, users: users}
}

func (s *TaskService) List(ctx context.Context, filter repositories.TaskFilter, skip, limit int) ([]db_models.Task, int64, error) {
	items, err := s.tasks.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.tasks.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

// ListOverdue shows managers and admins every overdue task; everyone
// else only sees tasks assigned to them.
func (s *TaskService) ListOverdue(ctx context.Context, caller *db_models.User) ([]db_models.Task, error) {
	var assignedTo *uint
	if caller.Role != db_models.RoleAdmin && caller.Role != db_models.RoleManager {
		assignedTo = &caller.ID
	}
	items, err := s.tasks.GetOverdue(ctx, assignedTo)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *TaskService) ListMine(ctx context.Context, userID uint, skip, limit int) ([]db_models.Task, error) {
	filter := repositories.TaskFilter{AssignedToUserID: &userID}
	items, err := s.tasks.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *TaskService) GetByID(ctx context.Context, id uint) (*db_models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task not found", utils.ErrNotFound)
	}
	return task, nil
}

func (s *TaskService) Create(ctx context.Context, req request_models.CreateTaskRequest, createdBy uint) (*db_models.Task, error) {
	if err := s.checkRefs(ctx, req.EventID, req.AssignedToUserID); err != nil {
		return nil, err
	}

	dueDate, err := utils.ParseDatePtr(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &db_models.Task{
		Title:            req.Title,
		Description:      req.Description,
		EventID:          req.EventID,
		AssignedToUserID: req.AssignedToUserID,
		CreatedByUserID:  &createdBy,
		Priority:         db_models.PriorityMedium,
		Status:           db_models.TaskPending,
		DueDate:          dueDate,
	}
	if req.Priority != nil {
		task.Priority = db_models.TaskPriority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = db_models.TaskStatus(*req.Status)
	}
	if task.Status == db_models.TaskCompleted {
		now := time.Now()
		task.CompletedAt = &now
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return task, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, req request_models.UpdateTaskRequest) (*db_models.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: task not found", utils.ErrNotFound)
	}

	if err := s.checkRefs(ctx, req.EventID, req.AssignedToUserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.EventID != nil {
		fields["event_id"] = *req.EventID
	}
	if req.AssignedToUserID != nil {
		fields["assigned_to_user_id"] = *req.AssignedToUserID
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Status != nil {
		applyStatusTransition(fields, existing.Status, db_models.TaskStatus(*req.Status))
	}
	if req.DueDate != nil {
		dueDate, err := utils.ParseDatePtr(req.DueDate)
		if err != nil {
			return nil, err
		}
		fields["due_date"] = dueDate
	}

	updated, err := s.tasks.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

// UpdateAsAssignee lets a task's assignee change its status or hand it
// to another user. Anyone who is not the current assignee is refused,
// whatever their role.
func (s *TaskService) UpdateAsAssignee(ctx context.Context, id uint, userID uint, req request_models.UpdateMyTaskRequest) (*db_models.Task, error) {
	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: task not found", utils.ErrNotFound)
	}
	if existing.AssignedToUserID == nil || *existing.AssignedToUserID != userID {
		return nil, fmt.Errorf("%w: task is not assigned to you", utils.ErrForbidden)
	}

	fields := map[string]interface{}{}
	if req.AssignedToUserID != nil {
		user, err := s.users.GetByID(ctx, *req.AssignedToUserID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if user == nil {
			return nil, fmt.Errorf("%w: user not found", utils.ErrNotFound)
		}
		fields["assigned_to_user_id"] = *req.AssignedToUserID
	}
	if req.Status != nil {
		applyStatusTransition(fields, existing.Status, db_models.TaskStatus(*req.Status))
	}

	updated, err := s.tasks.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: task not found", utils.ErrNotFound)
	}
	return nil
}

func (s *TaskService) GetSummary(ctx context.Context) (*response_models.TaskSummaryResponse, error) {
	summary, err := s.tasks.GetSummary(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *TaskService) ExportRows(ctx context.Context) ([]response_models.TaskExportRow, error) {
	tasks, err := s.tasks.GetFiltered(ctx, repositories.TaskFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	events, err := s.events.GetFiltered(ctx, repositories.EventFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	eventNames := make(map[uint]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
	}

	people, err := userNames(ctx, s.users)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows := make([]response_models.TaskExportRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, response_models.TaskExportRow{
			ID:          task.ID,
			Title:       task.Title,
			Description: strDeref(task.Description),
			Event:       nameForPtr(eventNames, task.EventID),
			AssignedTo:  nameForPtr(people, task.AssignedToUserID),
			CreatedBy:   nameForPtr(people, task.CreatedByUserID),
			Priority:    string(task.Priority),
			Status:      string(task.Status),
			DueDate:     task.DueDate,
			CompletedAt: task.CompletedAt,
		})
	}
	return rows, nil
}

// applyStatusTransition keeps completed_at in step with status: moving
// into completed stamps the time, moving out of it clears the stamp.
func applyStatusTransition(fields map[string]interface{}, from, to db_models.TaskStatus) {
	fields["status"] = to
	if to == db_models.TaskCompleted && from != db_models.TaskCompleted {
		fields["completed_at"] = time.Now()
	}
	if to != db_models.TaskCompleted && from == db_models.TaskCompleted {
		fields["completed_at"] = nil
	}
}

func (s *TaskService) checkRefs(ctx context.Context, eventID, assigneeID *uint) error {
	if eventID != nil {
		event, err := s.events.GetByID(ctx, *eventID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if event == nil {
			return fmt.Errorf("%w: event not found", utils.ErrNotFound)
		}
	}
	if assigneeID != nil {
		user, err := s.users.GetByID(ctx, *assigneeID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if user == nil {
			return fmt.Errorf("%w: user not found", utils.ErrNotFound)
		}
	}
	return nil
}
