package models

// Lifecycle table for expense status. Four edges, one inbound edge per
// non-initial state:
//
//	Pending  -> Approved  (approve)
//	Pending  -> Rejected  (reject)
//	Approved -> Pending   (reset)
//	Rejected -> Pending   (reset)
//
// There is no direct Approved <-> Rejected edge: a manager who erred resets to
// Pending first, then re-decides, so every terminal decision is individually
// reversible. Self-edges (Pending -> Pending) are not in the table and fail.
var allowedTransitions = map[ExpenseStatus]map[ExpenseStatus]bool{
	ExpenseStatusPending: {
		ExpenseStatusApproved: true,
		ExpenseStatusRejected: true,
	},
	ExpenseStatusApproved: {
		ExpenseStatusPending: true,
	},
	ExpenseStatusRejected: {
		ExpenseStatusPending: true,
	},
}

// CanApplyTransition reports whether from -> to is a legal lifecycle edge.
func CanApplyTransition(from, to ExpenseStatus) bool {
	return allowedTransitions[from][to]
}
