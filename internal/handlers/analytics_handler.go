package handlers

import (
	"net/http"
	"time"

	"smartspend/internal/dto"
	"smartspend/internal/errors"
	"smartspend/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves dashboard summary and chart series endpoints
type AnalyticsHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(expenseService services.ExpenseServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		expenseService: expenseService,
	}
}

// GetSummary returns the dashboard summary statistics for the
// authenticated user. Summary is null when no expenses exist.
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now, err := referenceInstant(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("as_of must be in YYYY-MM-DD format"))
	}

	summary, err := h.expenseService.GetSummary(userID, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}

// GetSeries returns every chart series computed from a single snapshot
// of the user's expenses
func (h *AnalyticsHandler) GetSeries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now, err := referenceInstant(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("as_of must be in YYYY-MM-DD format"))
	}

	series, err := h.expenseService.GetSeries(userID, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SeriesResponse{Series: series})
}

// referenceInstant resolves the instant used for window classification.
// The optional as_of query parameter pins it for reproducible results;
// otherwise the server clock is used.
func referenceInstant(c echo.Context) (time.Time, error) {
	asOf := c.QueryParam("as_of")
	if asOf == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", asOf)
}
