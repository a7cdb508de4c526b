package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/middleware"
	"wedplan/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{taskService: taskService}
}

func (t *TaskController) ListTasks(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.TaskFilter{
		EventID:          queryUintPtr(c, "event_id"),
		AssignedToUserID: queryUintPtr(c, "assigned_to_user_id"),
	}
	if raw := c.Query("status"); raw != "" {
		status := db_models.TaskStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := db_models.TaskPriority(raw)
		filter.Priority = &priority
	}

	tasks, total, err := t.taskService.List(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(tasks, total, page, pageSize), "Tasks fetched")
}

// ListOverdueTasks scopes the list to the caller unless they are a
// manager or admin.
func (t *TaskController) ListOverdueTasks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	tasks, err := t.taskService.ListOverdue(c.Request.Context(), user)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tasks, "Overdue tasks fetched")
}

// MyTasks lists tasks assigned to the caller.
func (t *TaskController) MyTasks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	_, pageSize, skip := parsePagination(c)
	tasks, err := t.taskService.ListMine(c.Request.Context(), user.ID, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tasks, "Tasks fetched")
}

func (t *TaskController) GetTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := t.taskService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task fetched")
}

func (t *TaskController) CreateTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := t.taskService.Create(c.Request.Context(), req, user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, task, "Task created")
}

func (t *TaskController) UpdateTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req request_models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := t.taskService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task updated")
}

// UpdateMyTask is the assignee-scoped variant: only the current
// assignee may move the task, whatever the caller's role.
func (t *TaskController) UpdateMyTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var req request_models.UpdateMyTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	task, err := t.taskService.UpdateAsAssignee(c.Request.Context(), id, user.ID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task updated")
}

func (t *TaskController) DeleteTask(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := t.taskService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Task deleted"}, "Task deleted")
}

func (t *TaskController) GetTaskSummary(c *gin.Context) {
	summary, err := t.taskService.GetSummary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Task summary fetched")
}

func (t *TaskController) ExportTasks(c *gin.Context) {
	rows, err := t.taskService.ExportRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.TaskExportRow]{
		{Header: "ID", Value: func(r response_models.TaskExportRow) any { return r.ID }},
		{Header: "Title", Value: func(r response_models.TaskExportRow) any { return r.Title }},
		{Header: "Description", Value: func(r response_models.TaskExportRow) any { return r.Description }},
		{Header: "Event", Value: func(r response_models.TaskExportRow) any { return r.Event }},
		{Header: "Assigned To", Value: func(r response_models.TaskExportRow) any { return r.AssignedTo }},
		{Header: "Created By", Value: func(r response_models.TaskExportRow) any { return r.CreatedBy }},
		{Header: "Priority", Value: func(r response_models.TaskExportRow) any { return r.Priority }},
		{Header: "Status", Value: func(r response_models.TaskExportRow) any { return r.Status }},
		{Header: "Due Date", Value: func(r response_models.TaskExportRow) any { return r.DueDate }},
		{Header: "Completed At", Value: func(r response_models.TaskExportRow) any { return r.CompletedAt }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Tasks")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tasks.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
