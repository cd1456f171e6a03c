package reports

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/shopspring/decimal"
)

// Pure reducers over an expense collection. Every report here is stateless,
// independent of input ordering, and returns a zero-valued/empty result on
// empty input. Dashboards over own, team and all scopes reduce through these
// same functions.

type ExpenseTotals struct {
	Total        decimal.Decimal `json:"total"`
	Reimbursed   decimal.Decimal `json:"reimbursed"`
	PendingCount int             `json:"pending_count"`
	Count        int             `json:"count"`
}

func Totals(expenses []*models.Expense) ExpenseTotals {
	totals := ExpenseTotals{
		Total:      decimal.Zero,
		Reimbursed: decimal.Zero,
	}
	for _, e := range expenses {
		totals.Total = totals.Total.Add(e.Amount)
		totals.Count++
		switch e.Status {
		case models.ExpenseStatusApproved:
			totals.Reimbursed = totals.Reimbursed.Add(e.Amount)
		case models.ExpenseStatusPending:
			totals.PendingCount++
		}
	}
	return totals
}

type Recency struct {
	Date    time.Time `json:"date"`
	AgeDays int       `json:"age_days"`
}

// LastReimbursed returns the most recent Approved expense date and its age in
// whole days relative to now. Nil when nothing has been approved: absence,
// not zero.
func LastReimbursed(expenses []*models.Expense, now time.Time) *Recency {
	var latest time.Time
	found := false
	for _, e := range expenses {
		if e.Status != models.ExpenseStatusApproved {
			continue
		}
		if !found || e.ExpenseDate.After(latest) {
			latest = e.ExpenseDate
			found = true
		}
	}
	if !found {
		return nil
	}
	age := int(math.Floor(now.Sub(latest).Hours() / 24))
	return &Recency{Date: latest, AgeDays: age}
}

// GroupAmounts sums amounts bucketed by an arbitrary key selector. Only keys
// present in the input appear: a department with zero expenses has no bucket.
func GroupAmounts(expenses []*models.Expense, key func(*models.Expense) string) map[string]decimal.Decimal {
	grouped := make(map[string]decimal.Decimal, len(expenses))
	for _, e := range expenses {
		k := key(e)
		grouped[k] = grouped[k].Add(e.Amount)
	}
	return grouped
}

func AmountsByDepartment(expenses []*models.Expense) map[string]decimal.Decimal {
	return GroupAmounts(expenses, func(e *models.Expense) string { return e.Department })
}

func AmountsByCategory(expenses []*models.Expense) map[string]decimal.Decimal {
	return GroupAmounts(expenses, func(e *models.Expense) string { return e.Category })
}

type MonthBucket struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// referenceYear is a sorting key only, never an identity: buckets keyed by
// short month name merge the same month across years. Known ambiguity carried
// over from the dashboards this feeds; do not "fix" it here without changing
// the bucket key contract.
const referenceYear = 2025

// MonthlyTrend buckets amounts by calendar month of the expense date, keeps
// only months that actually have expenses, and sorts chronologically.
func MonthlyTrend(expenses []*models.Expense) []MonthBucket {
	byMonth := make(map[time.Month]decimal.Decimal)
	for _, e := range expenses {
		m := e.ExpenseDate.Month()
		byMonth[m] = byMonth[m].Add(e.Amount)
	}

	buckets := make([]MonthBucket, 0, len(byMonth))
	for m, amount := range byMonth {
		buckets = append(buckets, MonthBucket{
			Month:  time.Date(referenceYear, m, 1, 0, 0, 0, 0, time.UTC).Format("Jan"),
			Amount: amount,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		ti, _ := time.Parse("Jan", buckets[i].Month)
		tj, _ := time.Parse("Jan", buckets[j].Month)
		return ti.Month() < tj.Month()
	})
	return buckets
}

type EmployeeRollup struct {
	EmployeeId int             `json:"employee_id"`
	Total      decimal.Decimal `json:"total"`
	Pending    int             `json:"pending"`
	Approved   int             `json:"approved"`
	Rejected   int             `json:"rejected"`
}

// RollupByEmployee backs the team overview table: per-employee amount total
// plus status counts, ordered by employee id for stable output.
func RollupByEmployee(expenses []*models.Expense) []*EmployeeRollup {
	byEmployee := make(map[int]*EmployeeRollup)
	for _, e := range expenses {
		r := byEmployee[e.EmployeeId]
		if r == nil {
			r = &EmployeeRollup{EmployeeId: e.EmployeeId, Total: decimal.Zero}
			byEmployee[e.EmployeeId] = r
		}
		r.Total = r.Total.Add(e.Amount)
		switch e.Status {
		case models.ExpenseStatusPending:
			r.Pending++
		case models.ExpenseStatusApproved:
			r.Approved++
		case models.ExpenseStatusRejected:
			r.Rejected++
		}
	}

	rollups := make([]*EmployeeRollup, 0, len(byEmployee))
	for _, r := range byEmployee {
		rollups = append(rollups, r)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].EmployeeId < rollups[j].EmployeeId })
	return rollups
}

// ExpenseFilter is the shared conjunctive filter primitive: every view
// (dashboard search, approval queue, history) composes it before reducing.
// The sentinel "all" (or empty) skips a predicate.
type ExpenseFilter struct {
	Search   string `json:"search"`   // case-insensitive substring on description
	Category string `json:"category"` // exact match
	Status   string `json:"status"`   // exact match against status vocabulary
}

func (f ExpenseFilter) skipCategory() bool {
	return f.Category == "" || f.Category == models.FilterAll
}

func (f ExpenseFilter) skipStatus() bool {
	return f.Status == "" || f.Status == models.FilterAll
}

func (f ExpenseFilter) Matches(e *models.Expense) bool {
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Search)) {
		return false
	}
	if !f.skipCategory() && e.Category != f.Category {
		return false
	}
	if !f.skipStatus() && string(e.Status) != f.Status {
		return false
	}
	return true
}

func (f ExpenseFilter) Apply(expenses []*models.Expense) []*models.Expense {
	filtered := make([]*models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Share returns the integer percentage of part in total, 0 when total is zero.
func Share(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(part.Mul(decimal.NewFromInt(100)).Div(total).Round(0).IntPart())
}

// ScopeSummary is the full dashboard payload for one scope.
type ScopeSummary struct {
	Totals         ExpenseTotals              `json:"totals"`
	LastReimbursed *Recency                   `json:"last_reimbursed,omitempty"`
	ByDepartment   map[string]decimal.Decimal `json:"by_department"`
	ByCategory     map[string]decimal.Decimal `json:"by_category"`
	MonthlyTrend   []MonthBucket              `json:"monthly_trend"`
	ByEmployee     []*EmployeeRollup          `json:"by_employee"`
}

func Summarize(expenses []*models.Expense, now time.Time) *ScopeSummary {
	return &ScopeSummary{
		Totals:         Totals(expenses),
		LastReimbursed: LastReimbursed(expenses, now),
		ByDepartment:   AmountsByDepartment(expenses),
		ByCategory:     AmountsByCategory(expenses),
		MonthlyTrend:   MonthlyTrend(expenses),
		ByEmployee:     RollupByEmployee(expenses),
	}
}
