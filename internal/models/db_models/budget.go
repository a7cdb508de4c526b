package db_models

import "time"

type BudgetCategory struct {
	BaseModel
	Category        string  `gorm:"size:200;not null;uniqueIndex" json:"category"`
	EstimatedAmount float64 `gorm:"type:numeric(12,2);not null" json:"estimated_amount"`
	Notes           *string `json:"notes"`
}

func (BudgetCategory) TableName() string { return "budget_categories" }

type Expense struct {
	BaseModel
	BudgetID      *uint         `gorm:"index" json:"budget_id"`
	VendorID      *uint         `gorm:"index" json:"vendor_id"`
	EventID       *uint         `gorm:"index" json:"event_id"`
	Description   string        `gorm:"size:500;not null" json:"description"`
	Amount        float64       `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"size:20;not null" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"size:20;not null;default:pending" json:"payment_status"`
	PaymentDate   *time.Time    `gorm:"type:date" json:"payment_date"`
	ReceiptURL    *string       `gorm:"size:500" json:"receipt_url"`
	PaidByUserID  *uint         `gorm:"index" json:"paid_by_user_id"`
	PaidByName    *string       `gorm:"size:200" json:"paid_by_name"`
	Side          *GuestSide    `gorm:"size:20" json:"side"`
	Notes         *string       `json:"notes"`
}
