package request_models

type CreateTaskRequest struct {
	Title            string  `json:"title" binding:"required"`
	Description      *string `json:"description"`
	EventID          *uint   `json:"event_id"`
	AssignedToUserID *uint   `json:"assigned_to_user_id"`
	Priority         *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status           *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate          *string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	EventID          *uint   `json:"event_id"`
	AssignedToUserID *uint   `json:"assigned_to_user_id"`
	Priority         *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status           *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate          *string `json:"due_date"`
}

// UpdateMyTaskRequest is the assignee-scoped update: status changes and
// handing the task back, nothing else.
type UpdateMyTaskRequest struct {
	Status           *string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	AssignedToUserID *uint   `json:"assigned_to_user_id"`
}
