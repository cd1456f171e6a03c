package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/raihanahmadkhan/fintrak-backend/config"
	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/raihanahmadkhan/fintrak-backend/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("fintrak-backend/workflow")

// TransitionExpense is the single writer for expense status. It loads the
// authoritative record, checks the access policy, validates the lifecycle
// edge, then persists. It returns the updated expense so callers can decide
// whether to re-sync the full collection.
//
// Races between two managers acting on the same expense resolve last-write-
// wins at the store; the redis lock below only narrows the window and
// correctness never depends on it.
func TransitionExpense(ctx context.Context, expenseId int, target models.ExpenseStatus) (*models.Expense, error) {

	ctx, span := tracer.Start(ctx, "TransitionExpense")
	defer span.End()
	span.SetAttributes(
		attribute.Int("expense.id", expenseId),
		attribute.String("expense.target_status", string(target)),
	)

	logger := config.GetLogger()

	actor, err := models.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	// best-effort per-expense serialization
	if locker := config.GetRedisLock(); locker != nil {
		lock, lockErr := locker.Obtain(ctx, fmt.Sprintf("ExpenseLock:%d", expenseId), 5*time.Second, nil)
		if lockErr == nil {
			defer lock.Release(context.WithoutCancel(ctx))
		} else if lockErr != redislock.ErrNotObtained {
			config.LogError(logger, "expenseLifecycle.go", "TransitionExpense", "Obtain", expenseId, lockErr)
		}
	}

	expense, err := models.GetExpense(ctx, expenseId)
	if err != nil {
		return nil, err
	}

	owner, err := models.GetUser(ctx, expense.EmployeeId)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(actor, owner, config.AdminTransitionOverride()) {
		return nil, utils.ErrUnauthorized
	}

	if !models.CanApplyTransition(expense.Status, target) {
		config.LogError(logger, "expenseLifecycle.go", "TransitionExpense", "CanApplyTransition",
			map[string]any{"expense_id": expenseId, "from": expense.Status, "to": target},
			utils.ErrInvalidTransition)
		return nil, utils.ErrInvalidTransition
	}

	db := config.GetDB()
	if db == nil {
		return nil, utils.ErrUpstreamUnavailable
	}
	if err := db.WithContext(ctx).Model(&models.Expense{ID: expense.ID}).
		Update("status", target).Error; err != nil {
		return nil, err
	}

	expense.Status = target
	return expense, nil
}

func ApproveExpense(ctx context.Context, expenseId int) (*models.Expense, error) {
	return TransitionExpense(ctx, expenseId, models.ExpenseStatusApproved)
}

func RejectExpense(ctx context.Context, expenseId int) (*models.Expense, error) {
	return TransitionExpense(ctx, expenseId, models.ExpenseStatusRejected)
}

// ResetExpense moves a decided expense back to Pending so it can be
// re-decided.
func ResetExpense(ctx context.Context, expenseId int) (*models.Expense, error) {
	return TransitionExpense(ctx, expenseId, models.ExpenseStatusPending)
}
