package models

import (
	"context"
	"errors"
	"time"

	"github.com/raihanahmadkhan/fintrak-backend/config"
	"github.com/raihanahmadkhan/fintrak-backend/utils"
	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          int             `gorm:"primary_key" json:"id"`
	EmployeeId  int             `gorm:"index;not null" json:"employee_id"`
	Department  string          `gorm:"size:100;index" json:"department"`
	ExpenseDate time.Time       `gorm:"not null;index" json:"date"`
	Category    string          `gorm:"size:100;not null" json:"category"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
	Description string          `gorm:"type:text" json:"description"`
	Status      ExpenseStatus   `gorm:"type:enum('Pending','Approved','Rejected');default:'Pending';index" json:"status"`
	InvoiceRef  string          `gorm:"size:255" json:"invoice_ref,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewExpense struct {
	ExpenseDate time.Time       `json:"date" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	InvoiceRef  string          `json:"invoice_ref"`
}

func (input *NewExpense) validate() error {
	if input.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	if input.Category == "" {
		return errors.New("category is required")
	}
	return nil
}

// normalizeDate strips the time-of-day: ExpenseDate is a calendar date and
// drives monthly bucketing, so everything is stored at midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateExpense stores a new claim for the calling employee. Status is always
// Pending and employeeId always comes from the caller's identity, never from
// client input.
func CreateExpense(ctx context.Context, input *NewExpense) (*Expense, error) {

	caller, err := CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	expense := Expense{
		EmployeeId:  caller.ID,
		Department:  caller.Department,
		ExpenseDate: normalizeDate(input.ExpenseDate),
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
		InvoiceRef:  utils.ExtractInvoiceObjectKey(input.InvoiceRef),
		Status:      ExpenseStatusPending,
	}

	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrUpstreamUnavailable
	}
	if err := db.WithContext(ctx).Create(&expense).Error; err != nil {
		return nil, err
	}

	return &expense, nil
}

func GetExpense(ctx context.Context, id int) (*Expense, error) {
	return utils.FetchModel[Expense](ctx, id)
}

// FetchExpenses returns the caller's expenses for the requested scope.
// A scope the caller's role does not grant yields an empty collection, not an
// error, so a denied request never leaks whether team data exists.
func FetchExpenses(ctx context.Context, scope ExpenseScope) ([]*Expense, error) {

	caller, err := CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if !CanView(caller, scope) {
		return []*Expense{}, nil
	}

	switch scope {
	case ScopeOwn:
		return utils.FetchModelsWhere[Expense](ctx, "employee_id = ?", caller.ID)
	case ScopeTeam:
		return utils.FetchModelsWhere[Expense](ctx,
			"employee_id IN (SELECT id FROM users WHERE manager_id = ?)", caller.ID)
	case ScopeAll:
		return utils.FetchAllModels[Expense](ctx)
	}
	return []*Expense{}, nil
}
