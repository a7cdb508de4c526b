package db_models

type User struct {
	BaseModel
	Email          string   `gorm:"size:255;uniqueIndex" json:"email"`
	HashedPassword string   `gorm:"size:255" json:"-"`
	FirstName      *string  `gorm:"size:100" json:"first_name"`
	LastName       *string  `gorm:"size:100" json:"last_name"`
	Role           UserRole `gorm:"size:50;not null;default:user" json:"role"`
	IsActive       bool     `gorm:"not null;default:true" json:"is_active"`
}
