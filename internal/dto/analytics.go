package dto

import "smartspend/internal/models"

// SummaryResponse wraps the dashboard summary. Summary is null when the
// user has no expenses yet; the client renders an empty state rather
// than a zeroed card row.
type SummaryResponse struct {
	Summary *models.ExpenseSummary `json:"summary"`
}

// SeriesResponse carries every chart series derived from one snapshot
type SeriesResponse struct {
	Series *models.DashboardSeries `json:"series"`
}
