package db_models

// LookupFields is the shared shape of the small reference tables used
// only as foreign-key targets.
type LookupFields struct {
	Name        string  `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
}

func (l LookupFields) GetName() string { return l.Name }

type EventType struct {
	BaseModel
	LookupFields
}

type VendorCategory struct {
	BaseModel
	LookupFields
}

type DietaryPreference struct {
	BaseModel
	LookupFields
}

type GiftType struct {
	BaseModel
	LookupFields
}

type RelationType struct {
	BaseModel
	LookupFields
}

type FamilyGroup struct {
	BaseModel
	LookupFields
}
