package reports

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raihanahmadkhan/fintrak-backend/models"
)

func expense(employeeId int, dept, category string, amount string, status models.ExpenseStatus, date time.Time) *models.Expense {
	return &models.Expense{
		EmployeeId:  employeeId,
		Department:  dept,
		Category:    category,
		Amount:      decimal.RequireFromString(amount),
		Status:      status,
		ExpenseDate: date,
		Description: category + " claim",
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleExpenses() []*models.Expense {
	return []*models.Expense{
		expense(1, "Finance", "Travel", "150", models.ExpenseStatusApproved, day(2025, time.January, 10)),
		expense(2, "IT", "Software", "200", models.ExpenseStatusPending, day(2025, time.February, 3)),
		expense(1, "Finance", "Meals", "50.25", models.ExpenseStatusRejected, day(2025, time.February, 20)),
		expense(3, "IT", "Travel", "99.75", models.ExpenseStatusApproved, day(2025, time.March, 1)),
	}
}

func TestTotals_DepartmentScenario(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "Finance", "Travel", "100", models.ExpenseStatusApproved, day(2025, time.January, 10)),
		expense(1, "Finance", "Meals", "50", models.ExpenseStatusApproved, day(2025, time.January, 12)),
		expense(2, "IT", "Software", "200", models.ExpenseStatusPending, day(2025, time.February, 3)),
	}

	totals := Totals(expenses)
	if totals.Total.String() != "350" {
		t.Fatalf("total = %s, want 350", totals.Total)
	}
	if totals.Reimbursed.String() != "150" {
		t.Fatalf("reimbursed = %s, want 150", totals.Reimbursed)
	}
	if totals.PendingCount != 1 || totals.Count != 3 {
		t.Fatalf("pending=%d count=%d, want 1 and 3", totals.PendingCount, totals.Count)
	}

	byDept := AmountsByDepartment(expenses)
	if byDept["Finance"].String() != "150" || byDept["IT"].String() != "200" {
		t.Fatalf("by department = %v", byDept)
	}
}

func TestTotals_EmptyInput(t *testing.T) {
	totals := Totals(nil)
	if !totals.Total.IsZero() || !totals.Reimbursed.IsZero() || totals.Count != 0 || totals.PendingCount != 0 {
		t.Fatalf("empty input must reduce to zero values, got %+v", totals)
	}
	if len(AmountsByDepartment(nil)) != 0 {
		t.Fatal("empty input must produce no department buckets")
	}
	if len(MonthlyTrend(nil)) != 0 {
		t.Fatal("empty input must produce no month buckets")
	}
	if len(RollupByEmployee(nil)) != 0 {
		t.Fatal("empty input must produce no rollups")
	}
}

func TestReducers_OrderIndependent(t *testing.T) {
	expenses := sampleExpenses()
	want := Summarize(expenses, day(2025, time.April, 1))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*models.Expense, len(expenses))
		copy(shuffled, expenses)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := Summarize(shuffled, day(2025, time.April, 1))
		if !got.Totals.Total.Equal(want.Totals.Total) ||
			!got.Totals.Reimbursed.Equal(want.Totals.Reimbursed) {
			t.Fatalf("totals changed under permutation: %+v vs %+v", got.Totals, want.Totals)
		}
		if got.LastReimbursed == nil || !got.LastReimbursed.Date.Equal(want.LastReimbursed.Date) {
			t.Fatal("recency changed under permutation")
		}
		if len(got.MonthlyTrend) != len(want.MonthlyTrend) {
			t.Fatal("trend length changed under permutation")
		}
		for j := range got.MonthlyTrend {
			if got.MonthlyTrend[j].Month != want.MonthlyTrend[j].Month ||
				!got.MonthlyTrend[j].Amount.Equal(want.MonthlyTrend[j].Amount) {
				t.Fatalf("trend bucket %d changed under permutation", j)
			}
		}
		for j := range got.ByEmployee {
			if got.ByEmployee[j].EmployeeId != want.ByEmployee[j].EmployeeId {
				t.Fatal("rollup order changed under permutation")
			}
		}
	}
}

func TestLastReimbursed_NilWhenNothingApproved(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "Finance", "Travel", "10", models.ExpenseStatusPending, day(2025, time.January, 1)),
		expense(1, "Finance", "Meals", "20", models.ExpenseStatusRejected, day(2025, time.January, 2)),
	}
	if r := LastReimbursed(expenses, day(2025, time.February, 1)); r != nil {
		t.Fatalf("expected nil recency, got %+v", r)
	}
}

func TestLastReimbursed_MostRecentApprovedAndAge(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "Finance", "Travel", "10", models.ExpenseStatusApproved, day(2025, time.January, 5)),
		expense(1, "Finance", "Meals", "20", models.ExpenseStatusApproved, day(2025, time.January, 20)),
		expense(1, "Finance", "Meals", "20", models.ExpenseStatusPending, day(2025, time.January, 25)),
	}
	r := LastReimbursed(expenses, day(2025, time.January, 30))
	if r == nil {
		t.Fatal("expected a recency result")
	}
	if !r.Date.Equal(day(2025, time.January, 20)) {
		t.Fatalf("date = %s, want 2025-01-20", r.Date)
	}
	if r.AgeDays != 10 {
		t.Fatalf("age = %d days, want 10", r.AgeDays)
	}
}

func TestMonthlyTrend_SortedAndSparse(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "Finance", "Travel", "30", models.ExpenseStatusPending, day(2025, time.March, 5)),
		expense(1, "Finance", "Travel", "10", models.ExpenseStatusPending, day(2025, time.January, 5)),
		expense(1, "Finance", "Travel", "5", models.ExpenseStatusPending, day(2025, time.January, 25)),
	}
	trend := MonthlyTrend(expenses)
	if len(trend) != 2 {
		t.Fatalf("expected 2 buckets (months without expenses are omitted), got %d", len(trend))
	}
	if trend[0].Month != "Jan" || trend[1].Month != "Mar" {
		t.Fatalf("buckets out of order: %v", trend)
	}
	if trend[0].Amount.String() != "15" {
		t.Fatalf("Jan amount = %s, want 15", trend[0].Amount)
	}
}

func TestMonthlyTrend_MergesYears(t *testing.T) {
	// Same month in different years lands in one bucket; the key is the
	// month name, not a (year, month) pair.
	expenses := []*models.Expense{
		expense(1, "Finance", "Travel", "10", models.ExpenseStatusPending, day(2024, time.June, 1)),
		expense(1, "Finance", "Travel", "20", models.ExpenseStatusPending, day(2025, time.June, 1)),
	}
	trend := MonthlyTrend(expenses)
	if len(trend) != 1 || trend[0].Month != "Jun" || trend[0].Amount.String() != "30" {
		t.Fatalf("expected single merged Jun bucket of 30, got %v", trend)
	}
}

func TestRollupByEmployee_CountsAndOrder(t *testing.T) {
	rollups := RollupByEmployee(sampleExpenses())
	if len(rollups) != 3 {
		t.Fatalf("expected 3 employees, got %d", len(rollups))
	}
	for i := 1; i < len(rollups); i++ {
		if rollups[i-1].EmployeeId >= rollups[i].EmployeeId {
			t.Fatal("rollups must be sorted by employee id")
		}
	}
	first := rollups[0]
	if first.EmployeeId != 1 || first.Total.String() != "200.25" ||
		first.Approved != 1 || first.Rejected != 1 || first.Pending != 0 {
		t.Fatalf("unexpected rollup for employee 1: %+v", first)
	}
}

func TestExpenseFilter_ConjunctionAndSentinel(t *testing.T) {
	expenses := sampleExpenses()

	cases := []struct {
		name   string
		filter ExpenseFilter
		want   int
	}{
		{"no predicates", ExpenseFilter{}, 4},
		{"all sentinels", ExpenseFilter{Category: models.FilterAll, Status: models.FilterAll}, 4},
		{"category only", ExpenseFilter{Category: "Travel"}, 2},
		{"status only", ExpenseFilter{Status: "Approved"}, 2},
		{"conjunction", ExpenseFilter{Category: "Travel", Status: "Approved"}, 2},
		{"search case-insensitive", ExpenseFilter{Search: "TRAVEL"}, 2},
		{"conjunction narrows", ExpenseFilter{Search: "travel", Category: "Travel", Status: "Pending"}, 0},
		{"flagged matches nothing", ExpenseFilter{Status: "Flagged"}, 0},
	}
	for _, tc := range cases {
		if got := len(tc.filter.Apply(expenses)); got != tc.want {
			t.Errorf("%s: got %d matches, want %d", tc.name, got, tc.want)
		}
	}
}

func TestShare_ZeroTotal(t *testing.T) {
	if got := Share(decimal.NewFromInt(10), decimal.Zero); got != 0 {
		t.Fatalf("share of zero total = %d, want 0", got)
	}
	if got := Share(decimal.NewFromInt(1), decimal.NewFromInt(3)); got != 33 {
		t.Fatalf("share = %d, want 33", got)
	}
}

func TestSummarize_EmptyScope(t *testing.T) {
	s := Summarize(nil, day(2025, time.April, 1))
	if s.LastReimbursed != nil {
		t.Fatal("recency must be absent on an empty scope")
	}
	if !s.Totals.Total.IsZero() || s.Totals.Count != 0 {
		t.Fatalf("totals must be zero on an empty scope, got %+v", s.Totals)
	}
}
