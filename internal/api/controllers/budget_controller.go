package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wedplan/internal/models/db_models"
	"wedplan/internal/models/request_models"
	"wedplan/internal/models/response_models"
	"wedplan/internal/repositories"
	"wedplan/internal/services"
	"wedplan/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{budgetService: budgetService}
}

func (b *BudgetController) ListCategories(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	categories, total, err := b.budgetService.ListCategories(c.Request.Context(), skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(categories, total, page, pageSize), "Budget categories fetched")
}

func (b *BudgetController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget category id")
		return
	}

	category, err := b.budgetService.GetCategory(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Budget category fetched")
}

func (b *BudgetController) CreateCategory(c *gin.Context) {
	var req request_models.CreateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := b.budgetService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, category, "Budget category created")
}

func (b *BudgetController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget category id")
		return
	}

	var req request_models.UpdateBudgetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	category, err := b.budgetService.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, category, "Budget category updated")
}

func (b *BudgetController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid budget category id")
		return
	}

	if err := b.budgetService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Budget category deleted"}, "Budget category deleted")
}

func (b *BudgetController) ListExpenses(c *gin.Context) {
	page, pageSize, skip := parsePagination(c)

	filter := repositories.ExpenseFilter{
		BudgetID:     queryUintPtr(c, "budget_id"),
		VendorID:     queryUintPtr(c, "vendor_id"),
		EventID:      queryUintPtr(c, "event_id"),
		PaidByUserID: queryUintPtr(c, "paid_by_user_id"),
	}
	if raw := c.Query("payment_status"); raw != "" {
		status := db_models.PaymentStatus(raw)
		filter.PaymentStatus = &status
	}
	if raw := c.Query("side"); raw != "" {
		side := db_models.GuestSide(raw)
		filter.Side = &side
	}

	expenses, total, err := b.budgetService.ListExpenses(c.Request.Context(), filter, skip, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.NewPaginatedResponse(expenses, total, page, pageSize), "Expenses fetched")
}

func (b *BudgetController) GetExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	expense, err := b.budgetService.GetExpense(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expense, "Expense fetched")
}

func (b *BudgetController) CreateExpense(c *gin.Context) {
	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := b.budgetService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondCreated(c, expense, "Expense created")
}

func (b *BudgetController) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	expense, err := b.budgetService.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, expense, "Expense updated")
}

func (b *BudgetController) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := b.budgetService.DeleteExpense(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.MessageResponse{Message: "Expense deleted"}, "Expense deleted")
}

// GetOverview reports estimated vs actual spend per category plus
// payment breakdowns.
func (b *BudgetController) GetOverview(c *gin.Context) {
	overview, err := b.budgetService.GetOverview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, overview, "Budget overview fetched")
}

func (b *BudgetController) ExportExpenses(c *gin.Context) {
	rows, err := b.budgetService.ExportExpenseRows(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	columns := []utils.ExcelColumn[response_models.ExpenseExportRow]{
		{Header: "ID", Value: func(r response_models.ExpenseExportRow) any { return r.ID }},
		{Header: "Description", Value: func(r response_models.ExpenseExportRow) any { return r.Description }},
		{Header: "Budget Category", Value: func(r response_models.ExpenseExportRow) any { return r.BudgetCategory }},
		{Header: "Vendor", Value: func(r response_models.ExpenseExportRow) any { return r.Vendor }},
		{Header: "Event", Value: func(r response_models.ExpenseExportRow) any { return r.Event }},
		{Header: "Amount", Value: func(r response_models.ExpenseExportRow) any { return r.Amount }},
		{Header: "Payment Method", Value: func(r response_models.ExpenseExportRow) any { return r.PaymentMethod }},
		{Header: "Payment Status", Value: func(r response_models.ExpenseExportRow) any { return r.PaymentStatus }},
		{Header: "Payment Date", Value: func(r response_models.ExpenseExportRow) any { return r.PaymentDate }},
		{Header: "Paid By", Value: func(r response_models.ExpenseExportRow) any { return r.PaidBy }},
		{Header: "Side", Value: func(r response_models.ExpenseExportRow) any { return r.Side }},
		{Header: "Notes", Value: func(r response_models.ExpenseExportRow) any { return r.Notes }},
	}

	buf, err := utils.GenerateExcel(rows, columns, "Expenses")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Could not generate workbook")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	c.Data(http.StatusOK, utils.ExcelContentType, buf.Bytes())
}
