package budget_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wedplan/internal/api/controllers"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
)

var Module = fx.Provide(
	provideBudgetCategoryRepo, provideExpenseRepo,
	provideBudgetService, provideBudgetController)

func provideBudgetCategoryRepo(db *gorm.DB) repositories.BudgetCategoryRepository {
	return repositories.NewBudgetCategoryRepository(db)
}

func provideExpenseRepo(db *gorm.DB) repositories.ExpenseRepository {
	return repositories.NewExpenseRepository(db)
}

func provideBudgetService(
	categories repositories.BudgetCategoryRepository,
	expenses repositories.ExpenseRepository,
	vendors repositories.VendorRepository,
	events repositories.EventRepository,
	users repositories.UserRepository,
) services.BudgetServiceInterface {
	return services.NewBudgetService(categories, expenses, vendors, events, users)
}

func provideBudgetController(budgetService services.BudgetServiceInterface) *controllers.BudgetController {
	return controllers.NewBudgetController(budgetService)
}
