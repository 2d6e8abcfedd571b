package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse() {
	response := NewErrorResponse(ExpenseNotFound, "trace-123")

	s.Equal("EXPENSE_001", response.Error.Code)
	s.Equal("Expense not found", response.Error.Message)
	s.Equal("trace-123", response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithDetails() {
	response := NewErrorResponse(ValidationGeneral, "trace-123", WithDetails("amount: must be greater than 0"))

	s.Len(response.Error.Details, 1)
	s.Equal("amount: must be greater than 0", response.Error.Details[0])
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMessage() {
	response := NewErrorResponse(ValidationGeneral, "trace-123", WithMessage("Custom message"))

	s.Equal("Custom message", response.Error.Message)
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *ResponseTestSuite) TestNewValidationError() {
	response := NewValidationError(map[string]string{"category": "must be a valid expense category"}, "trace-123")

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 1)
	s.Contains(response.Error.Details[0], "category: ")
}

func (s *ResponseTestSuite) TestWrapSystemError() {
	internal := errors.New("pq: connection refused")

	response, err := WrapSystemError(internal, "trace-123")

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	// The internal error text must never reach the response body
	s.NotContains(response.Error.Message, "connection refused")
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestToJSON() {
	response := NewErrorResponse(ExpenseNotFound, "trace-123")

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("EXPENSE_001", decoded["error"]["code"])
	s.Equal("trace-123", decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	s.Equal(http.StatusNotFound, NewErrorResponse(ExpenseNotFound, "t").GetHTTPStatus())
	s.Equal(http.StatusTooManyRequests, NewErrorResponse(SystemRateLimitExceeded, "t").GetHTTPStatus())
}
