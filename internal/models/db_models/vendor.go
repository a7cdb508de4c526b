package db_models

type Vendor struct {
	BaseModel
	Name             string  `gorm:"size:200;not null" json:"name"`
	VendorCategoryID uint    `gorm:"not null;index" json:"vendor_category_id"`
	ContactPerson    *string `gorm:"size:200" json:"contact_person"`
	Phone            *string `gorm:"size:20" json:"phone"`
	Email            *string `gorm:"size:255" json:"email"`
	Website          *string `gorm:"size:500" json:"website"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	IsBooked         bool    `gorm:"not null;default:false" json:"is_booked"`
}
