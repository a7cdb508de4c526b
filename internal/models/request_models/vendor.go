package request_models

type CreateVendorRequest struct {
	Name             string  `json:"name" binding:"required"`
	VendorCategoryID uint    `json:"vendor_category_id" binding:"required"`
	ContactPerson    *string `json:"contact_person"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Website          *string `json:"website"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	IsBooked         *bool   `json:"is_booked"`
}

type UpdateVendorRequest struct {
	Name             *string `json:"name"`
	VendorCategoryID *uint   `json:"vendor_category_id"`
	ContactPerson    *string `json:"contact_person"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Website          *string `json:"website"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	IsBooked         *bool   `json:"is_booked"`
}

type CreateVendorServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	VendorID    *uint    `json:"vendor_id"`
	EventID     *uint    `json:"event_id"`
	ServiceDate *string  `json:"service_date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Amount      *float64 `json:"amount"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending scheduled in_progress completed cancelled"`
	Notes       *string  `json:"notes"`
}

type UpdateVendorServiceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	VendorID    *uint    `json:"vendor_id"`
	EventID     *uint    `json:"event_id"`
	ServiceDate *string  `json:"service_date"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Amount      *float64 `json:"amount"`
	Status      *string  `json:"status" binding:"omitempty,oneof=pending scheduled in_progress completed cancelled"`
	Notes       *string  `json:"notes"`
}
