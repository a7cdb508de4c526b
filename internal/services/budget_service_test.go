package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"wedplan/internal/models/request_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

func newBudgetService(db *gorm.DB) BudgetServiceInterface {
	return NewBudgetService(
		repositories.NewBudgetCategoryRepository(db),
		repositories.NewExpenseRepository(db),
		repositories.NewVendorRepository(db),
		repositories.NewEventRepository(db),
		repositories.NewUserRepository(db),
	)
}

func TestBudgetCategoryNameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newBudgetService(db)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, request_models.CreateBudgetCategoryRequest{Category: "Catering", EstimatedAmount: 500000})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, request_models.CreateBudgetCategoryRequest{Category: "Catering", EstimatedAmount: 100})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestBudgetOverviewTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newBudgetService(db)
	ctx := context.Background()

	catering, err := svc.CreateCategory(ctx, request_models.CreateBudgetCategoryRequest{Category: "Catering", EstimatedAmount: 500000})
	require.NoError(t, err)
	decor, err := svc.CreateCategory(ctx, request_models.CreateBudgetCategoryRequest{Category: "Decoration", EstimatedAmount: 200000})
	require.NoError(t, err)

	paid := "paid"
	_, err = svc.CreateExpense(ctx, request_models.CreateExpenseRequest{
		BudgetID:      &catering.ID,
		Description:   "advance to caterer",
		Amount:        150000,
		PaymentMethod: "upi",
		PaymentStatus: &paid,
	})
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, request_models.CreateExpenseRequest{
		BudgetID:      &catering.ID,
		Description:   "tasting session",
		Amount:        10000,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	_, err = svc.CreateExpense(ctx, request_models.CreateExpenseRequest{
		BudgetID:      &decor.ID,
		Description:   "flower order",
		Amount:        40000,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, float64(700000), overview.TotalEstimated)
	assert.Equal(t, float64(200000), overview.TotalSpent)
	assert.Equal(t, float64(500000), overview.Remaining)
	assert.Equal(t, float64(150000), overview.ByPaymentStatus["paid"])
	assert.Equal(t, float64(50000), overview.ByPaymentStatus["pending"])
	assert.Equal(t, float64(150000), overview.ByPaymentMethod["upi"])

	require.Len(t, overview.Categories, 2)
	for _, cat := range overview.Categories {
		switch cat.Category {
		case "Catering":
			assert.Equal(t, float64(160000), cat.TotalSpent)
			assert.Equal(t, float64(340000), cat.Remaining)
			assert.Equal(t, int64(2), cat.ExpenseCount)
		case "Decoration":
			assert.Equal(t, float64(40000), cat.TotalSpent)
		}
	}
}

func TestExpenseUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := newBudgetService(db)

	missing := uint(9999)
	_, err := svc.CreateExpense(context.Background(), request_models.CreateExpenseRequest{
		BudgetID:      &missing,
		Description:   "nothing",
		Amount:        10,
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestDeletedExpenseExcludedFromOverview(t *testing.T) {
	db := newTestDB(t)
	svc := newBudgetService(db)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, request_models.CreateBudgetCategoryRequest{Category: "Music", EstimatedAmount: 80000})
	require.NoError(t, err)

	expense, err := svc.CreateExpense(ctx, request_models.CreateExpenseRequest{
		BudgetID:      &cat.ID,
		Description:   "dj booking",
		Amount:        30000,
		PaymentMethod: "upi",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteExpense(ctx, expense.ID))

	overview, err := svc.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(0), overview.TotalSpent)
}
