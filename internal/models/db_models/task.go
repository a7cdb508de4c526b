package db_models

import "time"

// CompletedAt is derived state: entering "completed" stamps it, leaving
// "completed" clears it. The task service owns that transition.
type Task struct {
	BaseModel
	Title            string       `gorm:"size:300;not null" json:"title"`
	Description      *string      `json:"description"`
	EventID          *uint        `gorm:"index" json:"event_id"`
	AssignedToUserID *uint        `gorm:"index" json:"assigned_to_user_id"`
	CreatedByUserID  *uint        `gorm:"index" json:"created_by_user_id"`
	Priority         TaskPriority `gorm:"size:20;not null;default:medium" json:"priority"`
	Status           TaskStatus   `gorm:"size:20;not null;default:pending" json:"status"`
	DueDate          *time.Time   `gorm:"type:date" json:"due_date"`
	CompletedAt      *time.Time   `json:"completed_at"`
}
