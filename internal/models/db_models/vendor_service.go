package db_models

import "time"

type VendorServiceItem struct {
	BaseModel
	Title       string              `gorm:"size:300;not null" json:"title"`
	Description *string             `json:"description"`
	VendorID    *uint               `gorm:"index" json:"vendor_id"`
	EventID     *uint               `gorm:"index" json:"event_id"`
	ServiceDate *time.Time          `gorm:"type:date" json:"service_date"`
	StartTime   *string             `gorm:"size:10" json:"start_time"`
	EndTime     *string             `gorm:"size:10" json:"end_time"`
	Amount      *float64            `gorm:"type:numeric(12,2)" json:"amount"`
	Status      VendorServiceStatus `gorm:"size:20;not null;default:pending" json:"status"`
	Notes       *string             `json:"notes"`
}

func (VendorServiceItem) TableName() string { return "vendor_services" }
