package request_models

type CreateEventRequest struct {
	Name         string  `json:"name" binding:"required"`
	EventTypeID  uint    `json:"event_type_id" binding:"required"`
	Description  *string `json:"description"`
	VenueName    *string `json:"venue_name"`
	VenueAddress *string `json:"venue_address"`
	EventDate    string  `json:"event_date" binding:"required"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Status       *string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type UpdateEventRequest struct {
	Name         *string `json:"name"`
	EventTypeID  *uint   `json:"event_type_id"`
	Description  *string `json:"description"`
	VenueName    *string `json:"venue_name"`
	VenueAddress *string `json:"venue_address"`
	EventDate    *string `json:"event_date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Status       *string `json:"status" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
}
