package request_models

type CreateBudgetCategoryRequest struct {
	Category        string  `json:"category" binding:"required"`
	EstimatedAmount float64 `json:"estimated_amount" binding:"required,min=0"`
	Notes           *string `json:"notes"`
}

type UpdateBudgetCategoryRequest struct {
	Category        *string  `json:"category"`
	EstimatedAmount *float64 `json:"estimated_amount" binding:"omitempty,min=0"`
	Notes           *string  `json:"notes"`
}

type CreateExpenseRequest struct {
	BudgetID      *uint   `json:"budget_id"`
	VendorID      *uint   `json:"vendor_id"`
	EventID       *uint   `json:"event_id"`
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,min=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=cash upi bank_transfer card other"`
	PaymentStatus *string `json:"payment_status" binding:"omitempty,oneof=pending partial paid"`
	PaymentDate   *string `json:"payment_date"`
	ReceiptURL    *string `json:"receipt_url"`
	PaidByUserID  *uint   `json:"paid_by_user_id"`
	PaidByName    *string `json:"paid_by_name"`
	Side          *string `json:"side" binding:"omitempty,oneof=bride groom"`
	Notes         *string `json:"notes"`
}

type UpdateExpenseRequest struct {
	BudgetID      *uint    `json:"budget_id"`
	VendorID      *uint    `json:"vendor_id"`
	EventID       *uint    `json:"event_id"`
	Description   *string  `json:"description"`
	Amount        *float64 `json:"amount" binding:"omitempty,min=0"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,oneof=cash upi bank_transfer card other"`
	PaymentStatus *string  `json:"payment_status" binding:"omitempty,oneof=pending partial paid"`
	PaymentDate   *string  `json:"payment_date"`
	ReceiptURL    *string  `json:"receipt_url"`
	PaidByUserID  *uint    `json:"paid_by_user_id"`
	PaidByName    *string  `json:"paid_by_name"`
	Side          *string  `json:"side" binding:"omitempty,oneof=bride groom"`
	Notes         *string  `json:"notes"`
}
