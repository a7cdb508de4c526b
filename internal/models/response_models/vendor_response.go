package response_models

type VendorSummaryResponse struct {
	TotalVendors int64            `json:"total_vendors"`
	Booked       int64            `json:"booked"`
	NotBooked    int64            `json:"not_booked"`
	ByCategory   map[string]int64 `json:"by_category"`
}

type VendorServiceSummaryResponse struct {
	Total           int64            `json:"total"`
	ByStatus        map[string]int64 `json:"by_status"`
	UnassignedCount int64            `json:"unassigned_count"`
	AllEventsCount  int64            `json:"all_events_count"`
}
