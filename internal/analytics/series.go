package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"smartspend/internal/models"
)

// SortOrder controls the direction of the category breakdown.
type SortOrder string

const (
	// SortDesc puts the biggest categories first (pie and ranking views).
	SortDesc SortOrder = "desc"
	// SortAsc puts the biggest categories last (horizontal bar charts,
	// where the longest bar renders at the top).
	SortAsc SortOrder = "asc"
)

// DefaultDailyWindowDays is the trailing window used for the daily chart.
const DefaultDailyWindowDays = 30

// MonthlyTotals groups expenses into calendar year+month buckets and
// returns them in chronological order.
func MonthlyTotals(expenses []models.Expense) []models.MonthlyTotal {
	buckets := make(map[string]*models.MonthlyTotal)

	for _, e := range expenses {
		month := e.Date.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &models.MonthlyTotal{Month: month}
			buckets[month] = bucket
		}
		bucket.Total = bucket.Total.Add(e.Amount)
		bucket.Count++
	}

	totals := make([]models.MonthlyTotal, 0, len(buckets))
	for _, bucket := range buckets {
		totals = append(totals, *bucket)
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	return totals
}

// CategoryTotals sums expenses per distinct category and sorts by total in
// the requested order. Only categories actually present in the snapshot
// appear in the result.
func CategoryTotals(expenses []models.Expense, order SortOrder) []models.CategoryTotal {
	buckets := make(map[string]decimal.Decimal)

	for _, e := range expenses {
		buckets[e.Category] = buckets[e.Category].Add(e.Amount)
	}

	totals := make([]models.CategoryTotal, 0, len(buckets))
	for category, total := range buckets {
		totals = append(totals, models.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Category < totals[j].Category
		}
		if order == SortAsc {
			return totals[i].Total.LessThan(totals[j].Total)
		}
		return totals[i].Total.GreaterThan(totals[j].Total)
	})

	return totals
}

// DailyTotals groups expenses from the trailing windowDays window into
// calendar-day buckets, chronologically ascending. The window boundary is
// inclusive, matching ClassifyWindow. An empty result means nothing fell
// inside the window; callers render an empty state, not a zero-filled chart.
func DailyTotals(expenses []models.Expense, now time.Time, windowDays int) []models.DailyTotal {
	buckets := make(map[time.Time]decimal.Decimal)

	for _, e := range expenses {
		if daysBetween(e.Date, now) > windowDays {
			continue
		}
		day := models.TruncateToDay(e.Date)
		buckets[day] = buckets[day].Add(e.Amount)
	}

	totals := make([]models.DailyTotal, 0, len(buckets))
	for day, total := range buckets {
		totals = append(totals, models.DailyTotal{Day: day, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Day.Before(totals[j].Day)
	})

	return totals
}

// CumulativeTimeline orders expenses by date ascending and computes the
// running prefix sum of amounts. The sort is stable, so two expenses on the
// same day keep their snapshot (insertion) order; the running total is
// order-sensitive and must be deterministic for a fixed input.
func CumulativeTimeline(expenses []models.Expense) []models.TimelinePoint {
	if len(expenses) == 0 {
		return []models.TimelinePoint{}
	}

	ordered := make([]models.Expense, len(expenses))
	copy(ordered, expenses)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	points := make([]models.TimelinePoint, 0, len(ordered))
	running := decimal.Zero
	for _, e := range ordered {
		running = running.Add(e.Amount)
		points = append(points, models.TimelinePoint{
			Date:         e.Date,
			Amount:       e.Amount,
			RunningTotal: running,
		})
	}

	return points
}

// BuildSeries derives every dashboard series from a single snapshot.
func BuildSeries(expenses []models.Expense, now time.Time) *models.DashboardSeries {
	return &models.DashboardSeries{
		Monthly:      MonthlyTotals(expenses),
		CategoryDesc: CategoryTotals(expenses, SortDesc),
		CategoryAsc:  CategoryTotals(expenses, SortAsc),
		Daily:        DailyTotals(expenses, now, DefaultDailyWindowDays),
		Cumulative:   CumulativeTimeline(expenses),
	}
}
