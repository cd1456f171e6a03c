package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/raihanahmadkhan/fintrak-backend/middlewares"
	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/raihanahmadkhan/fintrak-backend/models/reports"
	"github.com/raihanahmadkhan/fintrak-backend/utils"
	"github.com/raihanahmadkhan/fintrak-backend/workflow"
)

func createExpenseHandler(c *gin.Context) {
	// amount arrives in whatever shape the client produced (number, quoted
	// number, currency-prefixed string), so it is parsed separately from the
	// typed binding
	var req struct {
		Date        time.Time `json:"date" binding:"required"`
		Category    string    `json:"category" binding:"required"`
		Amount      any       `json:"amount" binding:"required"`
		Description string    `json:"description" binding:"required"`
		InvoiceRef  string    `json:"invoice_ref"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := models.NewExpense{
		ExpenseDate: req.Date,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
		InvoiceRef:  req.InvoiceRef,
	}
	expense, err := models.CreateExpense(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

type expenseListItem struct {
	*models.Expense
	EmployeeName string `json:"employee_name,omitempty"`
	InvoiceURL   string `json:"invoice_url,omitempty"`
}

// attachEmployeeInfo decorates listing rows with the owning employee's name
// via the per-request dataloader, so N rows cost one user query.
func attachEmployeeInfo(c *gin.Context, expenses []*models.Expense) []*expenseListItem {
	ctx := c.Request.Context()
	items := make([]*expenseListItem, 0, len(expenses))
	for _, e := range expenses {
		item := &expenseListItem{Expense: e}
		if e.InvoiceRef != "" {
			item.InvoiceURL = utils.BuildInvoiceAccessURL(e.InvoiceRef)
		}
		if user, err := middlewares.GetUser(ctx, e.EmployeeId); err == nil && user != nil {
			item.EmployeeName = user.Name
		}
		items = append(items, item)
	}
	return items
}

func filterFromQuery(c *gin.Context) reports.ExpenseFilter {
	return reports.ExpenseFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
}

// listExpensesHandler serves one fixed scope per route. A caller whose role
// does not reach the scope gets an empty array, not an error.
func listExpensesHandler(scope models.ExpenseScope) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, err := models.CurrentUser(ctx); err != nil {
			respondError(c, err)
			return
		}

		expenses, err := models.FetchExpenses(ctx, scope)
		if err != nil {
			respondError(c, err)
			return
		}
		expenses = filterFromQuery(c).Apply(expenses)
		c.JSON(http.StatusOK, attachEmployeeInfo(c, expenses))
	}
}

func transitionHandler(apply func(ctx context.Context, expenseId int) (*models.Expense, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIdParam(c)
		if !ok {
			return
		}
		expense, err := apply(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, expense)
	}
}

var (
	approveExpenseHandler = transitionHandler(workflow.ApproveExpense)
	rejectExpenseHandler  = transitionHandler(workflow.RejectExpense)
	resetExpenseHandler   = transitionHandler(workflow.ResetExpense)
)
