package models

import "testing"

func TestCanApplyTransition_EdgeTable(t *testing.T) {
	statuses := []ExpenseStatus{ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected}
	allowed := map[[2]ExpenseStatus]bool{
		{ExpenseStatusPending, ExpenseStatusApproved}: true,
		{ExpenseStatusPending, ExpenseStatusRejected}: true,
		{ExpenseStatusApproved, ExpenseStatusPending}: true,
		{ExpenseStatusRejected, ExpenseStatusPending}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]ExpenseStatus{from, to}]
			if got := CanApplyTransition(from, to); got != want {
				t.Errorf("CanApplyTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanApplyTransition_SelfEdgesInvalid(t *testing.T) {
	for _, s := range []ExpenseStatus{ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected} {
		if CanApplyTransition(s, s) {
			t.Errorf("re-applying %s must be rejected, not treated as a no-op", s)
		}
	}
}

func TestCanApplyTransition_NoDirectApprovedRejected(t *testing.T) {
	if CanApplyTransition(ExpenseStatusApproved, ExpenseStatusRejected) {
		t.Fatal("Approved -> Rejected requires the two-step path through Pending")
	}
	if CanApplyTransition(ExpenseStatusRejected, ExpenseStatusApproved) {
		t.Fatal("Rejected -> Approved requires the two-step path through Pending")
	}
}

// Every status stays reachable: terminal states would strand claims that
// need correction.
func TestLifecycle_EveryStatusReachableFromEveryOther(t *testing.T) {
	statuses := []ExpenseStatus{ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected}

	reachable := func(from, to ExpenseStatus) bool {
		visited := map[ExpenseStatus]bool{from: true}
		frontier := []ExpenseStatus{from}
		for len(frontier) > 0 {
			next := []ExpenseStatus{}
			for _, s := range frontier {
				for _, cand := range statuses {
					if CanApplyTransition(s, cand) && !visited[cand] {
						visited[cand] = true
						next = append(next, cand)
					}
				}
			}
			frontier = next
		}
		return visited[to]
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if from == to {
				continue
			}
			if !reachable(from, to) {
				t.Errorf("%s cannot reach %s; no status may be terminal", from, to)
			}
		}
	}
}

func TestStatusFilterValues_FlaggedIsPresentationOnly(t *testing.T) {
	found := false
	for _, v := range StatusFilterValues {
		if v == "Flagged" {
			found = true
		}
	}
	if !found {
		t.Fatal("Flagged should stay in the filter vocabulary")
	}
	if _, err := ParseExpenseStatus("Flagged"); err == nil {
		t.Fatal("Flagged must never parse to a stored status")
	}
}
