package repositories

import (
	"errors"
	"fmt"

	"smartspend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID, scoped to its owner
func (r *expenseRepository) GetByID(id, userID uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// ListByUser retrieves the user's full expense snapshot in insertion order
func (r *expenseRepository) ListByUser(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Update applies a partial field update scoped to the owner and reports
// how many rows were touched. Zero rows means the expense does not exist
// or belongs to another user; the caller decides how to surface that.
func (r *expenseRepository) Update(id, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)

	if result.Error != nil {
		return 0, fmt.Errorf("failed to update expense: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes the expense owned by userID. Hard delete, no tombstone.
func (r *expenseRepository) Delete(id, userID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountByUser counts the user's expenses
func (r *expenseRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
