package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/response_models"
)

type BudgetCategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.BudgetCategory, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.BudgetCategory, error)
	Create(ctx context.Context, category *db_models.BudgetCategory) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.BudgetCategory, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*db_models.BudgetCategory, error)
}

type budgetCategoryRepository struct {
	*BaseRepository[db_models.BudgetCategory]
}

func NewBudgetCategoryRepository(db *gorm.DB) BudgetCategoryRepository {
	return &budgetCategoryRepository{BaseRepository: NewBaseRepository[db_models.BudgetCategory](db)}
}

func (r *budgetCategoryRepository) FindByName(ctx context.Context, name string) (*db_models.BudgetCategory, error) {
	var category db_models.BudgetCategory
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_deleted = ?", name, false).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

type ExpenseFilter struct {
	BudgetID      *uint
	VendorID      *uint
	EventID       *uint
	PaymentStatus *db_models.PaymentStatus
	Side          *db_models.GuestSide
	PaidByUserID  *uint
}

type ExpenseRepository interface {
	GetByID(ctx context.Context, id uint) (*db_models.Expense, error)
	GetAll(ctx context.Context, skip, limit int) ([]db_models.Expense, error)
	GetFiltered(ctx context.Context, filter ExpenseFilter, skip, limit int) ([]db_models.Expense, error)
	Create(ctx context.Context, expense *db_models.Expense) error
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*db_models.Expense, error)
	Delete(ctx context.Context, id uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	GetOverview(ctx context.Context, categories []db_models.BudgetCategory) (*response_models.BudgetOverviewResponse, error)
}

type expenseRepository struct {
	*BaseRepository[db_models.Expense]
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{BaseRepository: NewBaseRepository[db_models.Expense](db)}
}

func (r *expenseRepository) GetFiltered(ctx context.Context, filter ExpenseFilter, skip, limit int) ([]db_models.Expense, error) {
	q := r.db.WithContext(ctx).Where("is_deleted = ?", false)
	if filter.BudgetID != nil {
		q = q.Where("budget_id = ?", *filter.BudgetID)
	}
	if filter.VendorID != nil {
		q = q.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.EventID != nil {
		q = q.Where("event_id = ?", *filter.EventID)
	}
	if filter.PaymentStatus != nil {
		q = q.Where("payment_status = ?", *filter.PaymentStatus)
	}
	if filter.Side != nil {
		q = q.Where("side = ?", *filter.Side)
	}
	if filter.PaidByUserID != nil {
		q = q.Where("paid_by_user_id = ?", *filter.PaidByUserID)
	}

	var expenses []db_models.Expense
	err := q.Offset(skip).Limit(limit).Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *expenseRepository) spentByBudget(ctx context.Context, budgetID uint) (float64, error) {
	var spent float64
	err := r.db.WithContext(ctx).Model(&db_models.Expense{}).
		Select("coalesce(sum(amount), 0)").
		Where("budget_id = ? AND is_deleted = ?", budgetID, false).
		Scan(&spent).Error
	return spent, err
}

func (r *expenseRepository) GetOverview(ctx context.Context, categories []db_models.BudgetCategory) (*response_models.BudgetOverviewResponse, error) {
	overview := &response_models.BudgetOverviewResponse{
		Categories:      []response_models.BudgetCategoryDetail{},
		ByPaymentStatus: map[string]float64{},
		ByPaymentMethod: map[string]float64{},
	}

	for _, cat := range categories {
		spent, err := r.spentByBudget(ctx, cat.ID)
		if err != nil {
			return nil, err
		}

		var expenseCount int64
		err = r.db.WithContext(ctx).Model(&db_models.Expense{}).
			Where("budget_id = ? AND is_deleted = ?", cat.ID, false).
			Count(&expenseCount).Error
		if err != nil {
			return nil, err
		}

		overview.TotalEstimated += cat.EstimatedAmount
		overview.TotalSpent += spent
		overview.Categories = append(overview.Categories, response_models.BudgetCategoryDetail{
			ID:              cat.ID,
			CreatedAt:       cat.CreatedAt,
			UpdatedAt:       cat.UpdatedAt,
			Category:        cat.Category,
			EstimatedAmount: cat.EstimatedAmount,
			Notes:           cat.Notes,
			TotalSpent:      spent,
			Remaining:       cat.EstimatedAmount - spent,
			ExpenseCount:    expenseCount,
		})
	}
	overview.Remaining = overview.TotalEstimated - overview.TotalSpent

	type labelSum struct {
		Label string
		Total float64
	}

	var byStatus []labelSum
	err := r.db.WithContext(ctx).Model(&db_models.Expense{}).
		Select("payment_status as label, coalesce(sum(amount), 0) as total").
		Where("is_deleted = ?", false).
		Group("payment_status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		overview.ByPaymentStatus[row.Label] = row.Total
	}

	var byMethod []labelSum
	err = r.db.WithContext(ctx).Model(&db_models.Expense{}).
		Select("payment_method as label, coalesce(sum(amount), 0) as total").
		Where("is_deleted = ?", false).
		Group("payment_method").
		Scan(&byMethod).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byMethod {
		overview.ByPaymentMethod[row.Label] = row.Total
	}

	return overview, nil
}
