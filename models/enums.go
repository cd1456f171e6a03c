package models

import "errors"

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleManager  UserRole = "manager"
	UserRoleAdmin    UserRole = "admin"
)

// ParseUserRole is the only way a free-text role enters the system; every
// consumer downstream switches exhaustively on the closed enum.
func ParseUserRole(s string) (UserRole, error) {
	switch s {
	case "employee":
		return UserRoleEmployee, nil
	case "manager":
		return UserRoleManager, nil
	case "admin":
		return UserRoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "Pending"
	ExpenseStatusApproved ExpenseStatus = "Approved"
	ExpenseStatusRejected ExpenseStatus = "Rejected"
)

func ParseExpenseStatus(s string) (ExpenseStatus, error) {
	switch s {
	case "Pending":
		return ExpenseStatusPending, nil
	case "Approved":
		return ExpenseStatusApproved, nil
	case "Rejected":
		return ExpenseStatusRejected, nil
	default:
		return "", errors.New("invalid expense status")
	}
}

type ExpenseScope string

const (
	ScopeOwn  ExpenseScope = "own"
	ScopeTeam ExpenseScope = "team"
	ScopeAll  ExpenseScope = "all"
)

func ParseExpenseScope(s string) (ExpenseScope, error) {
	switch s {
	case "own", "mine":
		return ScopeOwn, nil
	case "team":
		return ScopeTeam, nil
	case "all":
		return ScopeAll, nil
	default:
		return "", errors.New("invalid scope")
	}
}

// FilterAll is the sentinel that disables a filter predicate.
const FilterAll = "all"

// StatusFilterValues is the vocabulary exposed to status filter dropdowns.
// "Flagged" is presentation-only: no lifecycle edge produces it, so a filter
// on it simply matches nothing.
var StatusFilterValues = []string{
	FilterAll,
	string(ExpenseStatusPending),
	string(ExpenseStatusApproved),
	string(ExpenseStatusRejected),
	"Flagged",
}
