package handlers

import (
	"fmt"
	"net/http"
	"time"

	"smartspend/internal/dto"
	"smartspend/internal/errors"
	"smartspend/internal/models"
	"smartspend/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense CRUD endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
	auditService   services.AuditServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface, auditService services.AuditServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
		auditService:   auditService,
	}
}

// CreateExpense records a new expense for the authenticated user
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AddExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	expense, err := h.expenseService.AddExpense(userID, req.Category, req.Amount, date, req.Description)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.ExpenseInvalidAmount)
		case services.ErrInvalidCategory:
			return SendError(c, errors.ExpenseInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	// Audit failure must not fail the request
	_ = h.auditService.LogExpenseCreated(userID, expense.ID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toExpenseResponse(expense),
		Message: "Expense recorded successfully",
	})
}

// ListExpenses returns all expenses owned by the authenticated user
// in insertion order
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, err := h.expenseService.ListExpenses(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: responses,
		Count:    len(responses),
	})
}

// UpdateExpense applies a partial update to an expense owned by the
// authenticated user
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid expense ID"))
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.expenseService.UpdateExpense(expenseID, userID, &req); err != nil {
		switch err {
		case services.ErrExpenseNotFound:
			return SendError(c, errors.ExpenseNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.ExpenseInvalidAmount)
		case services.ErrInvalidCategory:
			return SendError(c, errors.ExpenseInvalidCategory)
		case services.ErrNoFieldsToUpdate:
			return SendError(c, errors.ExpenseNoFieldsToUpdate)
		}
		return SendSystemError(c, err)
	}

	_ = h.auditService.LogExpenseUpdated(userID, expenseID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Expense updated successfully",
	})
}

// DeleteExpense removes an expense owned by the authenticated user
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid expense ID"))
	}

	if err := h.expenseService.DeleteExpense(expenseID, userID); err != nil {
		if err == services.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	_ = h.auditService.LogExpenseDeleted(userID, expenseID, getClientIP(c), c.Request().UserAgent())

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Expense deleted successfully",
	})
}

// ExportExpenses streams the user's expenses as a CSV attachment
func (h *ExpenseHandler) ExportExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	data, err := h.expenseService.ExportCSV(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := fmt.Sprintf("expenses_%s.csv", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, "text/csv", data)
}

func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          expense.ID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		Date:        expense.Date.Format("2006-01-02"),
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
	}
}
