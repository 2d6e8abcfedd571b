package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is one calendar-month bucket of the monthly trend series.
type MonthlyTotal struct {
	Month string          `json:"month"` // "YYYY-MM"
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// CategoryTotal is one slice of the per-category breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DailyTotal is one calendar-day bucket of the trailing-window daily series.
type DailyTotal struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// TimelinePoint is one expense on the cumulative spending timeline.
// RunningTotal is the prefix sum of amounts in date order, with
// insertion order breaking same-day ties.
type TimelinePoint struct {
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	RunningTotal decimal.Decimal `json:"running_total"`
}

// DashboardSeries bundles every chart series derived from one snapshot.
// All five series come from the same snapshot so cards and charts can
// never disagree within a single dashboard render.
type DashboardSeries struct {
	Monthly      []MonthlyTotal  `json:"monthly"`
	CategoryDesc []CategoryTotal `json:"category_desc"`
	CategoryAsc  []CategoryTotal `json:"category_asc"`
	Daily        []DailyTotal    `json:"daily"`
	Cumulative   []TimelinePoint `json:"cumulative"`
}
