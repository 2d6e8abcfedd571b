package models

import "github.com/shopspring/decimal"

// ExpenseSummary contains the aggregate statistics shown on the dashboard.
// It is derived fresh from a full snapshot of the user's expenses on every
// request and is never persisted. The three window totals are always
// computed against the same reference instant.
type ExpenseSummary struct {
	TotalAmount       decimal.Decimal `json:"total_amount"`
	AverageAmount     decimal.Decimal `json:"average_amount"`
	Count             int             `json:"count"`
	TopCategory       string          `json:"top_category"`
	LargestAmount     decimal.Decimal `json:"largest_amount"`
	CurrentMonthTotal decimal.Decimal `json:"current_month_total"`
	Last30DaysTotal   decimal.Decimal `json:"last_30_days_total"`
	Last7DaysTotal    decimal.Decimal `json:"last_7_days_total"`
	DailyAverage30    decimal.Decimal `json:"daily_average_30_days"`
}
