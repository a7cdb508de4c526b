package response_models

type TaskSummaryResponse struct {
	TotalTasks int64            `json:"total_tasks"`
	Pending    int64            `json:"pending"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	Cancelled  int64            `json:"cancelled"`
	Overdue    int64            `json:"overdue"`
	ByPriority map[string]int64 `json:"by_priority"`
	ByEvent    map[string]int64 `json:"by_event"`
}
