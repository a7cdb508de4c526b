package response_models

type GuestSummaryResponse struct {
	TotalGuests         int64            `json:"total_guests"`
	TotalPersons        int64            `json:"total_persons"`
	BySide              map[string]int64 `json:"by_side"`
	ByDietaryPreference map[string]int64 `json:"by_dietary_preference"`
	ByAgeGroup          map[string]int64 `json:"by_age_group"`
	VIPCount            int64            `json:"vip_count"`
	FamilyGroupsCount   int64            `json:"family_groups_count"`
}
