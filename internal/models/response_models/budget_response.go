package response_models

import "time"

type BudgetCategoryDetail struct {
	ID              uint      `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Category        string    `json:"category"`
	EstimatedAmount float64   `json:"estimated_amount"`
	Notes           *string   `json:"notes"`
	TotalSpent      float64   `json:"total_spent"`
	Remaining       float64   `json:"remaining"`
	ExpenseCount    int64     `json:"expense_count"`
}

type BudgetOverviewResponse struct {
	TotalEstimated  float64                `json:"total_estimated"`
	TotalSpent      float64                `json:"total_spent"`
	Remaining       float64                `json:"remaining"`
	Categories      []BudgetCategoryDetail `json:"categories"`
	ByPaymentStatus map[string]float64     `json:"by_payment_status"`
	ByPaymentMethod map[string]float64     `json:"by_payment_method"`
}
