package request_models

type CreateInvitationRequest struct {
	GuestID  uint    `json:"guest_id" binding:"required"`
	EventID  uint    `json:"event_id" binding:"required"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending sent confirmed declined maybe"`
	PlusOnes *int    `json:"plus_ones" binding:"omitempty,min=0"`
	Notes    *string `json:"notes"`
}

type BulkInvitationRequest struct {
	EventID  uint    `json:"event_id" binding:"required"`
	GuestIDs []uint  `json:"guest_ids" binding:"required,min=1"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending sent confirmed declined maybe"`
}

type UpdateInvitationRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=pending sent confirmed declined maybe"`
	PlusOnes *int    `json:"plus_ones" binding:"omitempty,min=0"`
	Notes    *string `json:"notes"`
}

type RSVPItem struct {
	InvitationID uint   `json:"invitation_id" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=pending sent confirmed declined maybe"`
	PlusOnes     *int   `json:"plus_ones" binding:"omitempty,min=0"`
}

type BulkRSVPRequest struct {
	Updates []RSVPItem `json:"updates" binding:"required,min=1,dive"`
}
