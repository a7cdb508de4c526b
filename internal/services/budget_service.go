package services

import (
	"context"
	"fmt"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/pkg/utils"
)

type BudgetServiceInterface interface {
	ListCategories(ctx context.Context, skip, limit int) ([]db_models.BudgetCategory, int64, error)
	GetCategory(ctx context.Context, id uint) (*db_models.BudgetCategory, error)
	CreateCategory(ctx context.Context, req request_models.CreateBudgetCategoryRequest) (*db_models.BudgetCategory, error)
	UpdateCategory(ctx context.Context, id uint, req request_models.UpdateBudgetCategoryRequest) (*db_models.BudgetCategory, error)
	DeleteCategory(ctx context.Context, id uint) error

	ListExpenses(ctx context.Context, filter repositories.ExpenseFilter, skip, limit int) ([]db_models.Expense, int64, error)
	GetExpense(ctx context.Context, id uint) (*db_models.Expense, error)
	CreateExpense(ctx context.Context, req request_models.CreateExpenseRequest) (*db_models.Expense, error)
	UpdateExpense(ctx context.Context, id uint, req request_models.UpdateExpenseRequest) (*db_models.Expense, error)
	DeleteExpense(ctx context.Context, id uint) error
	ExportExpenseRows(ctx context.Context) ([]response_models.ExpenseExportRow, error)

	GetOverview(ctx context.Context) (*response_models.BudgetOverviewResponse, error)
}

type BudgetService struct {
	categories repositories.BudgetCategoryRepository
	expenses   repositories.ExpenseRepository
	vendors    repositories.VendorRepository
	events     repositories.EventRepository
	users      repositories.UserRepository
}

func NewBudgetService(
	categories repositories.BudgetCategoryRepository,
	expenses repositories.ExpenseRepository,
	vendors repositories.VendorRepository,
	events repositories.EventRepository,
	users repositories.UserRepository,
) BudgetServiceInterface {
	return &BudgetService{categories: categories, expenses: expenses, vendors: vendors, events: events, users: users}
}

func (s *BudgetService) ListCategories(ctx context.Context, skip, limit int) ([]db_models.BudgetCategory, int64, error) {
	items, err := s.categories.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.categories.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *BudgetService) GetCategory(ctx context.Context, id uint) (*db_models.BudgetCategory, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, fmt.Errorf("%w: budget category not found", utils.ErrNotFound)
	}
	return category, nil
}

func (s *BudgetService) CreateCategory(ctx context.Context, req request_models.CreateBudgetCategoryRequest) (*db_models.BudgetCategory, error) {
	existing, err := s.categories.FindByName(ctx, req.Category)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: budget category '%s' already exists", utils.ErrConflict, req.Category)
	}

	category := &db_models.BudgetCategory{
		Category:        req.Category,
		EstimatedAmount: req.EstimatedAmount,
		Notes:           req.Notes,
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return category, nil
}

func (s *BudgetService) UpdateCategory(ctx context.Context, id uint, req request_models.UpdateBudgetCategoryRequest) (*db_models.BudgetCategory, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: budget category not found", utils.ErrNotFound)
	}

	fields := map[string]interface{}{}
	if req.Category != nil && *req.Category != existing.Category {
		byName, err := s.categories.FindByName(ctx, *req.Category)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if byName != nil {
			return nil, fmt.Errorf("%w: budget category '%s' already exists", utils.ErrConflict, *req.Category)
		}
		fields["category"] = *req.Category
	}
	if req.EstimatedAmount != nil {
		fields["estimated_amount"] = *req.EstimatedAmount
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.categories.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *BudgetService) DeleteCategory(ctx context.Context, id uint) error {
	deleted, err := s.categories.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: budget category not found", utils.ErrNotFound)
	}
	return nil
}

func (s *BudgetService) ListExpenses(ctx context.Context, filter repositories.ExpenseFilter, skip, limit int) ([]db_models.Expense, int64, error) {
	items, err := s.expenses.GetFiltered(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	total, err := s.expenses.CountAll(ctx)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return items, total, nil
}

func (s *BudgetService) GetExpense(ctx context.Context, id uint) (*db_models.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if expense == nil {
		return nil, fmt.Errorf("%w: expense not found", utils.ErrNotFound)
	}
	return expense, nil
}

func (s *BudgetService) CreateExpense(ctx context.Context, req request_models.CreateExpenseRequest) (*db_models.Expense, error) {
	if err := s.checkExpenseRefs(ctx, req.BudgetID, req.VendorID, req.EventID, req.PaidByUserID); err != nil {
		return nil, err
	}

	paymentDate, err := utils.ParseDatePtr(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	expense := &db_models.Expense{
		BudgetID:      req.BudgetID,
		VendorID:      req.VendorID,
		EventID:       req.EventID,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: db_models.PaymentMethod(req.PaymentMethod),
		PaymentStatus: db_models.PaymentPending,
		PaymentDate:   paymentDate,
		ReceiptURL:    req.ReceiptURL,
		PaidByUserID:  req.PaidByUserID,
		PaidByName:    req.PaidByName,
		Notes:         req.Notes,
	}
	if req.PaymentStatus != nil {
		expense.PaymentStatus = db_models.PaymentStatus(*req.PaymentStatus)
	}
	if req.Side != nil {
		side := db_models.GuestSide(*req.Side)
		expense.Side = &side
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return expense, nil
}

func (s *BudgetService) UpdateExpense(ctx context.Context, id uint, req request_models.UpdateExpenseRequest) (*db_models.Expense, error) {
	existing, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: expense not found", utils.ErrNotFound)
	}

	if err := s.checkExpenseRefs(ctx, req.BudgetID, req.VendorID, req.EventID, req.PaidByUserID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.BudgetID != nil {
		fields["budget_id"] = *req.BudgetID
	}
	if req.VendorID != nil {
		fields["vendor_id"] = *req.VendorID
	}
	if req.EventID != nil {
		fields["event_id"] = *req.EventID
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if req.PaymentMethod != nil {
		fields["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		fields["payment_status"] = *req.PaymentStatus
	}
	if req.PaymentDate != nil {
		paymentDate, err := utils.ParseDatePtr(req.PaymentDate)
		if err != nil {
			return nil, err
		}
		fields["payment_date"] = paymentDate
	}
	if req.ReceiptURL != nil {
		fields["receipt_url"] = *req.ReceiptURL
	}
	if req.PaidByUserID != nil {
		fields["paid_by_user_id"] = *req.PaidByUserID
	}
	if req.PaidByName != nil {
		fields["paid_by_name"] = *req.PaidByName
	}
	if req.Side != nil {
		fields["side"] = *req.Side
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	updated, err := s.expenses.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return updated, nil
}

func (s *BudgetService) DeleteExpense(ctx context.Context, id uint) error {
	deleted, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !deleted {
		return fmt.Errorf("%w: expense not found", utils.ErrNotFound)
	}
	return nil
}

func (s *BudgetService) ExportExpenseRows(ctx context.Context) ([]response_models.ExpenseExportRow, error) {
	expenses, err := s.expenses.GetFiltered(ctx, repositories.ExpenseFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	categories, err := s.categories.GetAll(ctx, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Category
	}

	vendors, err := s.vendors.GetFiltered(ctx, repositories.VendorFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	vendorNames := make(map[uint]string, len(vendors))
	for _, v := range vendors {
		vendorNames[v.ID] = v.Name
	}

	events, err := s.events.GetFiltered(ctx, repositories.EventFilter{}, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	eventNames := make(map[uint]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
	}

	rows := make([]response_models.ExpenseExportRow, 0, len(expenses))
	for _, e := range expenses {
		side := ""
		if e.Side != nil {
			side = string(*e.Side)
		}
		rows = append(rows, response_models.ExpenseExportRow{
			ID:             e.ID,
			Description:    e.Description,
			BudgetCategory: nameForPtr(categoryNames, e.BudgetID),
			Vendor:         nameForPtr(vendorNames, e.VendorID),
			Event:          nameForPtr(eventNames, e.EventID),
			Amount:         e.Amount,
			PaymentMethod:  string(e.PaymentMethod),
			PaymentStatus:  string(e.PaymentStatus),
			PaymentDate:    e.PaymentDate,
			PaidBy:         strDeref(e.PaidByName),
			Side:           side,
			Notes:          strDeref(e.Notes),
		})
	}
	return rows, nil
}

func (s *BudgetService) GetOverview(ctx context.Context) (*response_models.BudgetOverviewResponse, error) {
	categories, err := s.categories.GetAll(ctx, 0, -1)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	overview, err := s.expenses.GetOverview(ctx, categories)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return overview, nil
}

func (s *BudgetService) checkExpenseRefs(ctx context.Context, budgetID, vendorID, eventID, paidByUserID *uint) error {
	if budgetID != nil {
		category, err := s.categories.GetByID(ctx, *budgetID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if category == nil {
			return fmt.Errorf("%w: budget category not found", utils.ErrNotFound)
		}
	}
	if vendorID != nil {
		vendor, err := s.vendors.GetByID(ctx, *vendorID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if vendor == nil {
			return fmt.Errorf("%w: vendor not found", utils.ErrNotFound)
		}
	}
	if eventID != nil {
		event, err := s.events.GetByID(ctx, *eventID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if event == nil {
			return fmt.Errorf("%w: event not found", utils.ErrNotFound)
		}
	}
	if paidByUserID != nil {
		user, err := s.users.GetByID(ctx, *paidByUserID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if user == nil {
			return fmt.Errorf("%w: user not found", utils.ErrNotFound)
		}
	}
	return nil
}
