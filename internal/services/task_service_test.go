package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

func newTaskService(db *gorm.DB) TaskServiceInterface {
	return NewTaskService(
		repositories.NewTaskRepository(db),
		repositories.NewEventRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestTaskCompletionStampsCompletedAt(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	creator := seedTestUser(t, db, "planner@example.com", db_models.RoleManager)
	task, err := svc.Create(ctx, request_models.CreateTaskRequest{Title: "Book the venue"}, creator.ID)
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)

	completed := string(db_models.TaskCompleted)
	updated, err := svc.Update(ctx, task.ID, request_models.UpdateTaskRequest{Status: &completed})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)

	// Moving back out of completed clears the stamp.
	pending := string(db_models.TaskPending)
	reverted, err := svc.Update(ctx, task.ID, request_models.UpdateTaskRequest{Status: &pending})
	require.NoError(t, err)
	assert.Nil(t, reverted.CompletedAt)
	assert.Equal(t, db_models.TaskPending, reverted.Status)
}

func TestTaskCreatedCompletedGetsStamp(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	creator := seedTestUser(t, db, "planner2@example.com", db_models.RoleManager)
	completed := string(db_models.TaskCompleted)
	task, err := svc.Create(ctx, request_models.CreateTaskRequest{Title: "Send invites", Status: &completed}, creator.ID)
	require.NoError(t, err)
	assert.NotNil(t, task.CompletedAt)
}

func TestUpdateAsAssigneeRejectsOthers(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	creator := seedTestUser(t, db, "admin@example.com", db_models.RoleAdmin)
	assignee := seedTestUser(t, db, "worker@example.com", db_models.RoleUser)
	task, err := svc.Create(ctx, request_models.CreateTaskRequest{
		Title:            "Confirm caterer",
		AssignedToUserID: &assignee.ID,
	}, creator.ID)
	require.NoError(t, err)

	inProgress := string(db_models.TaskInProgress)

	// Even the admin who created the task is refused on the
	// self-service path.
	_, err = svc.UpdateAsAssignee(ctx, task.ID, creator.ID, request_models.UpdateMyTaskRequest{Status: &inProgress})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	updated, err := svc.UpdateAsAssignee(ctx, task.ID, assignee.ID, request_models.UpdateMyTaskRequest{Status: &inProgress})
	require.NoError(t, err)
	assert.Equal(t, db_models.TaskInProgress, updated.Status)
}

func TestUpdateAsAssigneeReassigns(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	creator := seedTestUser(t, db, "admin2@example.com", db_models.RoleAdmin)
	assignee := seedTestUser(t, db, "worker2@example.com", db_models.RoleUser)
	next := seedTestUser(t, db, "worker3@example.com", db_models.RoleUser)
	task, err := svc.Create(ctx, request_models.CreateTaskRequest{
		Title:            "Pick up flowers",
		AssignedToUserID: &assignee.ID,
	}, creator.ID)
	require.NoError(t, err)

	updated, err := svc.UpdateAsAssignee(ctx, task.ID, assignee.ID, request_models.UpdateMyTaskRequest{AssignedToUserID: &next.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.AssignedToUserID)
	assert.Equal(t, next.ID, *updated.AssignedToUserID)

	// The previous assignee lost the task and cannot touch it anymore.
	inProgress := string(db_models.TaskInProgress)
	_, err = svc.UpdateAsAssignee(ctx, task.ID, assignee.ID, request_models.UpdateMyTaskRequest{Status: &inProgress})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrForbidden))
}

func TestTaskCreateUnknownAssignee(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	creator := seedTestUser(t, db, "admin3@example.com", db_models.RoleAdmin)
	missing := uint(999)
	_, err := svc.Create(ctx, request_models.CreateTaskRequest{Title: "x", AssignedToUserID: &missing}, creator.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestOverdueScopedByRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTaskService(db)
	ctx := context.Background()

	manager := seedTestUser(t, db, "lead@example.com", db_models.RoleManager)
	worker := seedTestUser(t, db, "helper@example.com", db_models.RoleUser)
	other := seedTestUser(t, db, "helper2@example.com", db_models.RoleUser)

	due := "2026-01-01"
	_, err := svc.Create(ctx, request_models.CreateTaskRequest{
		Title:            "book pandit",
		DueDate:          &due,
		AssignedToUserID: &worker.ID,
	}, manager.ID)
	require.NoError(t, err)
	_, err = svc.Create(ctx, request_models.CreateTaskRequest{
		Title:            "order flowers",
		DueDate:          &due,
		AssignedToUserID: &other.ID,
	}, manager.ID)
	require.NoError(t, err)

	all, err := svc.ListOverdue(ctx, manager)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListOverdue(ctx, worker)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "book pandit", mine[0].Title)
}
