package response_models

type BulkInvitationResponse struct {
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Message string `json:"message"`
}

type RSVPSummaryResponse struct {
	EventID                uint   `json:"event_id"`
	EventName              string `json:"event_name"`
	TotalInvited           int64  `json:"total_invited"`
	Confirmed              int64  `json:"confirmed"`
	Declined               int64  `json:"declined"`
	Maybe                  int64  `json:"maybe"`
	Pending                int64  `json:"pending"`
	Sent                   int64  `json:"sent"`
	TotalPlusOnes          int64  `json:"total_plus_ones"`
	TotalExpectedAttendees int64  `json:"total_expected_attendees"`
}
