package request_models

type CreateGiftRequest struct {
	GuestID        uint     `json:"guest_id" binding:"required"`
	GiftTypeID     uint     `json:"gift_type_id" binding:"required"`
	Description    *string  `json:"description"`
	EstimatedValue *float64 `json:"estimated_value" binding:"omitempty,min=0"`
	ReceivedAt     *string  `json:"received_at"`
	ThankYouSent   *bool    `json:"thank_you_sent"`
	Notes          *string  `json:"notes"`
}

type UpdateGiftRequest struct {
	GuestID        *uint    `json:"guest_id"`
	GiftTypeID     *uint    `json:"gift_type_id"`
	Description    *string  `json:"description"`
	EstimatedValue *float64 `json:"estimated_value" binding:"omitempty,min=0"`
	ReceivedAt     *string  `json:"received_at"`
	ThankYouSent   *bool    `json:"thank_you_sent"`
	Notes          *string  `json:"notes"`
}
