package db_models

import "time"

type Gift struct {
	BaseModel
	GuestID        uint       `gorm:"not null;index" json:"guest_id"`
	GiftTypeID     uint       `gorm:"not null;index" json:"gift_type_id"`
	Description    *string    `json:"description"`
	EstimatedValue *float64   `gorm:"type:numeric(12,2)" json:"estimated_value"`
	ReceivedAt     *time.Time `gorm:"type:date" json:"received_at"`
	ThankYouSent   bool       `gorm:"not null;default:false" json:"thank_you_sent"`
	Notes          *string    `json:"notes"`
}
