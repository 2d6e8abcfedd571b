// Package analytics turns a snapshot of a user's expenses into the summary
// statistics and chart series behind the dashboard. Every function here is
// pure: the reference instant is an explicit parameter, nothing reads the
// wall clock, and repeated calls over the same snapshot yield identical
// results.
package analytics

import (
	"time"

	"smartspend/internal/models"
)

// Window reports which named time windows a record date falls into,
// relative to a reference instant.
type Window struct {
	InCurrentMonth bool
	InLast7Days    bool
	InLast30Days   bool
}

// ClassifyWindow decides window membership for a record date.
//
// InCurrentMonth is a calendar match (same month and year as now), which is
// deliberately distinct from the rolling 30-day window. The trailing windows
// use a date-granular difference with an inclusive boundary: a record dated
// exactly 7 (or 30) days before now is inside the window.
func ClassifyWindow(recordDate, now time.Time) Window {
	days := daysBetween(recordDate, now)

	return Window{
		InCurrentMonth: recordDate.Month() == now.Month() && recordDate.Year() == now.Year(),
		InLast7Days:    days <= 7,
		InLast30Days:   days <= 30,
	}
}

// daysBetween returns the number of whole calendar days from date to now.
// Time-of-day is discarded on both sides, so a record dated today is 0 days
// old regardless of clock time. Future dates yield a negative count.
func daysBetween(date, now time.Time) int {
	d := models.TruncateToDay(date)
	n := models.TruncateToDay(now)
	return int(n.Sub(d).Hours() / 24)
}
