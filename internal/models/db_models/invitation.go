package db_models

// Invitation rows keep the (guest, event) pair unique across deleted rows
// too: re-inviting a soft-deleted pair reactivates the original row.
type Invitation struct {
	BaseModel
	GuestID  uint             `gorm:"not null;uniqueIndex:uq_guest_event" json:"guest_id"`
	EventID  uint             `gorm:"not null;uniqueIndex:uq_guest_event" json:"event_id"`
	Status   InvitationStatus `gorm:"size:20;not null;default:pending" json:"status"`
	PlusOnes int              `gorm:"not null;default:0" json:"plus_ones"`
	Notes    *string          `json:"notes"`

	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Event *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}
