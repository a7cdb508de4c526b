package db_models

import "time"

type Event struct {
	BaseModel
	Name         string      `gorm:"size:200;not null" json:"name"`
	EventTypeID  uint        `gorm:"not null;index" json:"event_type_id"`
	Description  *string     `json:"description"`
	VenueName    *string     `gorm:"size:300" json:"venue_name"`
	VenueAddress *string     `json:"venue_address"`
	EventDate    time.Time   `gorm:"type:date;not null" json:"event_date"`
	StartTime    *string     `gorm:"size:10" json:"start_time"`
	EndTime      *string     `gorm:"size:10" json:"end_time"`
	Status       EventStatus `gorm:"size:20;not null;default:upcoming" json:"status"`
}
