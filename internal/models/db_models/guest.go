package db_models

import "time"

type Guest struct {
	BaseModel
	FirstName           string     `gorm:"size:100;not null" json:"first_name"`
	LastName            string     `gorm:"size:100;not null" json:"last_name"`
	Email               *string    `gorm:"size:255;uniqueIndex" json:"email"`
	Phone               string     `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Side                GuestSide  `gorm:"size:20;not null" json:"side"`
	RelationTypeID      *uint      `gorm:"index" json:"relation_type_id"`
	FamilyGroupID       *uint      `gorm:"index" json:"family_group_id"`
	DietaryPreferenceID *uint      `gorm:"index" json:"dietary_preference_id"`
	AgeGroup            AgeGroup   `gorm:"size:20;not null;default:adult" json:"age_group"`
	NumberOfPersons     *int       `gorm:"default:1" json:"number_of_persons"`
	RoomNumber          *string    `gorm:"size:50" json:"room_number"`
	Floor               *string    `gorm:"size:50" json:"floor"`
	ArrivalAt           *time.Time `json:"arrival_at"`
	DepartureAt         *time.Time `json:"departure_at"`
	Notes               *string    `json:"notes"`
	IsVIP               bool       `gorm:"column:is_vip;not null;default:false" json:"is_vip"`
}
