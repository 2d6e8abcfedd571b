package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smartspend/internal/analytics"
	"smartspend/internal/dto"
	"smartspend/internal/models"
	"smartspend/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidCategory = errors.New("invalid expense category")
	// ErrExpenseNotFound covers both a missing expense and one owned by
	// another user. The two cases are indistinguishable on purpose.
	ErrExpenseNotFound  = errors.New("expense not found or access denied")
	ErrNoFieldsToUpdate = errors.New("no fields provided to update")
)

// ExpenseService orchestrates expense CRUD and the analytics core. I/O
// happens only at this boundary: the analytics functions themselves work
// on in-memory snapshots fetched here.
type ExpenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// AddExpense validates and stores a new expense for the user
func (s *ExpenseService) AddExpense(userID uuid.UUID, category string, amount decimal.Decimal, date time.Time, description string) (*models.Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if !models.IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Date:        models.TruncateToDay(date),
		Description: description,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.metrics.IncrementCounter("expense_operations", map[string]string{"operation": "create", "category": category})
	s.logger.Info("expense added",
		"user_id", userID,
		"expense_id", expense.ID,
		"category", category,
		"amount", amount.String())

	return expense, nil
}

// UpdateExpense applies a partial update to an expense the user owns.
// The ownership check rides inside the single UPDATE statement; zero rows
// affected is authoritative proof the expense is missing or foreign, and
// is never retried.
func (s *ExpenseService) UpdateExpense(expenseID, userID uuid.UUID, updates *dto.UpdateExpenseRequest) error {
	if updates == nil || !updates.HasUpdates() {
		return ErrNoFieldsToUpdate
	}

	fields := map[string]interface{}{}

	if updates.Category != nil {
		if !models.IsValidCategory(*updates.Category) {
			return ErrInvalidCategory
		}
		fields["category"] = *updates.Category
	}

	if updates.Amount != nil {
		if updates.Amount.LessThanOrEqual(decimal.Zero) {
			return ErrInvalidAmount
		}
		fields["amount"] = *updates.Amount
	}

	if updates.Date != nil {
		date, err := time.Parse("2006-01-02", *updates.Date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		fields["date"] = models.TruncateToDay(date)
	}

	if updates.Description != nil {
		fields["description"] = *updates.Description
	}

	fields["updated_at"] = time.Now()

	affected, err := s.expenseRepo.Update(expenseID, userID, fields)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if affected == 0 {
		s.logger.Warn("update rejected", "expense_id", expenseID, "user_id", userID)
		return ErrExpenseNotFound
	}

	s.metrics.IncrementCounter("expense_operations", map[string]string{"operation": "update"})
	s.logger.Info("expense updated", "user_id", userID, "expense_id", expenseID)

	return nil
}

// DeleteExpense removes an expense the user owns. Hard delete.
func (s *ExpenseService) DeleteExpense(expenseID, userID uuid.UUID) error {
	affected, err := s.expenseRepo.Delete(expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		s.logger.Warn("delete rejected", "expense_id", expenseID, "user_id", userID)
		return ErrExpenseNotFound
	}

	s.metrics.IncrementCounter("expense_operations", map[string]string{"operation": "delete"})
	s.logger.Info("expense deleted", "user_id", userID, "expense_id", expenseID)

	return nil
}

// ListExpenses returns the user's full expense snapshot in insertion order
func (s *ExpenseService) ListExpenses(userID uuid.UUID) ([]models.Expense, error) {
	expenses, err := s.expenseRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetSummary fetches the user's snapshot and reduces it to the dashboard
// summary. A nil summary with a nil error means the user has no expenses.
func (s *ExpenseService) GetSummary(userID uuid.UUID, now time.Time) (*models.ExpenseSummary, error) {
	expenses, err := s.expenseRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for summary: %w", err)
	}

	start := time.Now()
	summary := analytics.Summarize(expenses, now)
	s.metrics.RecordProcessingTime("summary_computation", time.Since(start))

	return summary, nil
}

// GetSeries fetches the snapshot once and derives every chart series from
// it. A dashboard render must never mix two snapshots across summary cards
// and charts, so all series share this one fetch.
func (s *ExpenseService) GetSeries(userID uuid.UUID, now time.Time) (*models.DashboardSeries, error) {
	expenses, err := s.expenseRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for series: %w", err)
	}

	start := time.Now()
	series := analytics.BuildSeries(expenses, now)
	s.metrics.RecordProcessingTime("series_computation", time.Since(start))

	return series, nil
}

// ExportCSV renders the user's expenses as a CSV document
func (s *ExpenseService) ExportCSV(userID uuid.UUID) ([]byte, error) {
	expenses, err := s.expenseRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses for export: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "date", "category", "amount", "description", "created_at"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range expenses {
		record := []string{
			e.ID.String(),
			e.Date.Format("2006-01-02"),
			e.Category,
			e.Amount.StringFixed(2),
			e.Description,
			e.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.metrics.IncrementCounter("expense_operations", map[string]string{"operation": "export"})

	return buf.Bytes(), nil
}
