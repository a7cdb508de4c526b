package request_models

type CreateGuestRequest struct {
	FirstName           string  `json:"first_name" binding:"required"`
	LastName            string  `json:"last_name" binding:"required"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Phone               string  `json:"phone" binding:"required"`
	Side                string  `json:"side" binding:"required,oneof=bride groom"`
	RelationTypeID      *uint   `json:"relation_type_id"`
	FamilyGroupID       *uint   `json:"family_group_id"`
	DietaryPreferenceID *uint   `json:"dietary_preference_id"`
	AgeGroup            *string `json:"age_group" binding:"omitempty,oneof=adult child infant"`
	NumberOfPersons     *int    `json:"number_of_persons"`
	RoomNumber          *string `json:"room_number"`
	Floor               *string `json:"floor"`
	ArrivalAt           *string `json:"arrival_at"`
	DepartureAt         *string `json:"departure_at"`
	Notes               *string `json:"notes"`
	IsVIP               *bool   `json:"is_vip"`
}

type UpdateGuestRequest struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Email               *string `json:"email" binding:"omitempty,email"`
	Phone               *string `json:"phone"`
	Side                *string `json:"side" binding:"omitempty,oneof=bride groom"`
	RelationTypeID      *uint   `json:"relation_type_id"`
	FamilyGroupID       *uint   `json:"family_group_id"`
	DietaryPreferenceID *uint   `json:"dietary_preference_id"`
	AgeGroup            *string `json:"age_group" binding:"omitempty,oneof=adult child infant"`
	NumberOfPersons     *int    `json:"number_of_persons"`
	RoomNumber          *string `json:"room_number"`
	Floor               *string `json:"floor"`
	ArrivalAt           *string `json:"arrival_at"`
	DepartureAt         *string `json:"departure_at"`
	Notes               *string `json:"notes"`
	IsVIP               *bool   `json:"is_vip"`
}
