package response_models

type EventSummaryResponse struct {
	TotalEvents int64            `json:"total_events"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByType      map[string]int64 `json:"by_type"`
}
