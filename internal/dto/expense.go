package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddExpenseRequest contains the fields for creating an expense.
// Date uses the YYYY-MM-DD wire format; expenses are date-granular.
type AddExpenseRequest struct {
	Category    string          `json:"category" validate:"required,expense_category"`
	Amount      decimal.Decimal `json:"amount" validate:"positive_amount"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description" validate:"max=500"`
}

// UpdateExpenseRequest contains optional fields for a partial expense
// update. Only non-nil fields are applied.
type UpdateExpenseRequest struct {
	Category    *string          `json:"category,omitempty" validate:"omitempty,expense_category"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
}

// HasUpdates reports whether at least one field was supplied
func (r *UpdateExpenseRequest) HasUpdates() bool {
	return r.Category != nil || r.Amount != nil || r.Date != nil || r.Description != nil
}

// ExpenseResponse represents a single expense on the wire
type ExpenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ListExpensesResponse represents the response for listing expenses
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}
