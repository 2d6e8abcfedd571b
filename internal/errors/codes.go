package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthAccountInactive    ErrorCode = "AUTH_005"
	AuthDuplicateUsername  ErrorCode = "AUTH_006"
	AuthWeakPassword       ErrorCode = "AUTH_007"
	AuthInvalidUsername    ErrorCode = "AUTH_008"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidDate   ErrorCode = "VALIDATION_004"
)

// Expense error codes (EXPENSE_*)
const (
	// ExpenseNotFound deliberately covers both "does not exist" and
	// "owned by someone else" so responses never reveal whether a
	// record exists for another user.
	ExpenseNotFound         ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount    ErrorCode = "EXPENSE_002"
	ExpenseInvalidCategory  ErrorCode = "EXPENSE_003"
	ExpenseNoFieldsToUpdate ErrorCode = "EXPENSE_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials: "Invalid username or password",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthAccountInactive:    "Account is inactive",
	AuthDuplicateUsername:  "Username is already taken",
	AuthWeakPassword:       "Password does not meet the strength requirements",
	AuthInvalidUsername:    "Invalid username format",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidDate:   "Invalid date format or range",

	ExpenseNotFound:         "Expense not found",
	ExpenseInvalidAmount:    "Expense amount must be greater than zero",
	ExpenseInvalidCategory:  "Invalid expense category",
	ExpenseNoFieldsToUpdate: "No fields provided to update",

	SystemInternalError:      "An internal error occurred",
	SystemDatabaseError:      "A database error occurred",
	SystemServiceUnavailable: "Service is temporarily unavailable",
	SystemRateLimitExceeded:  "Too many requests, please try again later",
}

// errorHTTPStatus maps error codes to HTTP status codes
var errorHTTPStatus = map[ErrorCode]int{
	AuthInvalidCredentials: http.StatusUnauthorized,
	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,
	AuthAccountInactive:    http.StatusForbidden,
	AuthDuplicateUsername:  http.StatusConflict,
	AuthWeakPassword:       http.StatusBadRequest,
	AuthInvalidUsername:    http.StatusBadRequest,

	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,

	ExpenseNotFound:         http.StatusNotFound,
	ExpenseInvalidAmount:    http.StatusBadRequest,
	ExpenseInvalidCategory:  http.StatusBadRequest,
	ExpenseNoFieldsToUpdate: http.StatusBadRequest,

	SystemInternalError:      http.StatusInternalServerError,
	SystemDatabaseError:      http.StatusInternalServerError,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
}

// GetErrorMessage returns the default message for an error code
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "An unexpected error occurred"
}

// GetHTTPStatusForCode returns the HTTP status for an error code
func GetHTTPStatusForCode(code ErrorCode) int {
	if status, exists := errorHTTPStatus[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}
