package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartspend/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorHandlerContext(t *testing.T) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return rec, c
}

func TestCustomHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	rec, c := newErrorHandlerContext(t)

	CustomHTTPErrorHandler(echo.NewHTTPError(http.StatusNotFound, "route not found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "EXPENSE_001", response.Error.Code)
	assert.Equal(t, "route not found", response.Error.Message)
	assert.Equal(t, "test-trace-id", response.Error.TraceID)
}

func TestCustomHTTPErrorHandler_GenericError(t *testing.T) {
	rec, c := newErrorHandlerContext(t)

	CustomHTTPErrorHandler(fmt.Errorf("connection refused to db host"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var response errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "SYSTEM_001", response.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused", "internal details must not leak")
}

func TestCustomHTTPErrorHandler_CommittedResponse(t *testing.T) {
	rec, c := newErrorHandlerContext(t)

	require.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))
	body := rec.Body.String()

	CustomHTTPErrorHandler(fmt.Errorf("late error"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, body, rec.Body.String(), "committed responses must not be rewritten")
}

func TestMapHTTPStatusToErrorCode(t *testing.T) {
	tests := []struct {
		status   int
		expected errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusUnauthorized, errors.AuthMissingToken},
		{http.StatusForbidden, errors.AuthAccountInactive},
		{http.StatusNotFound, errors.ExpenseNotFound},
		{http.StatusMethodNotAllowed, errors.ValidationGeneral},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, errors.SystemInternalError},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemInternalError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, mapHTTPStatusToErrorCode(tt.status), "status %d", tt.status)
	}
}
