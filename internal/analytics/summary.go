package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/models"
)

var thirtyDays = decimal.NewFromInt(30)

// Summarize reduces a snapshot of expenses into the dashboard's summary
// statistics. It returns nil for an empty snapshot: "no data yet" is a
// legitimate state the caller renders as such, not a zeroed summary.
//
// All three window totals are evaluated against the same reference instant
// so a single summary can never mix inconsistent windows.
func Summarize(expenses []models.Expense, now time.Time) *models.ExpenseSummary {
	if len(expenses) == 0 {
		return nil
	}

	summary := &models.ExpenseSummary{Count: len(expenses)}

	for _, e := range expenses {
		summary.TotalAmount = summary.TotalAmount.Add(e.Amount)

		if e.Amount.GreaterThan(summary.LargestAmount) {
			summary.LargestAmount = e.Amount
		}

		w := ClassifyWindow(e.Date, now)
		if w.InCurrentMonth {
			summary.CurrentMonthTotal = summary.CurrentMonthTotal.Add(e.Amount)
		}
		if w.InLast7Days {
			summary.Last7DaysTotal = summary.Last7DaysTotal.Add(e.Amount)
		}
		if w.InLast30Days {
			summary.Last30DaysTotal = summary.Last30DaysTotal.Add(e.Amount)
		}
	}

	summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(int64(summary.Count)))
	summary.TopCategory = topCategory(expenses)

	// Zero spend over the window means a zero daily average, not a
	// degenerate division result.
	if summary.Last30DaysTotal.GreaterThan(decimal.Zero) {
		summary.DailyAverage30 = summary.Last30DaysTotal.Div(thirtyDays)
	} else {
		summary.DailyAverage30 = decimal.Zero
	}

	return summary
}

// topCategory returns the statistical mode of the category field: the
// category with the most records. Ties go to the category seen first in
// the snapshot, keeping the result deterministic for a fixed input.
func topCategory(expenses []models.Expense) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, e := range expenses {
		if _, ok := firstSeen[e.Category]; !ok {
			firstSeen[e.Category] = i
		}
		counts[e.Category]++
	}

	var top string
	bestCount := -1
	for category, count := range counts {
		switch {
		case count > bestCount:
			top = category
			bestCount = count
		case count == bestCount && firstSeen[category] < firstSeen[top]:
			top = category
		}
	}

	return top
}
