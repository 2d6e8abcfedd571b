package repositories

import (
	"smartspend/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense storage.
// Every query and mutation is scoped by the owning user's ID: an expense
// is never visible to, nor mutable by, any other user. Mutations report
// the affected-row count so callers can treat zero rows as an
// authoritative not-found-or-forbidden result.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id, userID uuid.UUID) (*models.Expense, error)
	// ListByUser returns the user's full expense snapshot in insertion
	// order (created_at, then id). Callers that need a different order
	// sort explicitly.
	ListByUser(userID uuid.UUID) ([]models.Expense, error)
	// Update applies a partial field update in a single conditional
	// statement and returns the number of rows affected. The ownership
	// check happens inside the UPDATE itself, leaving no gap between
	// check and write.
	Update(id, userID uuid.UUID, fields map[string]interface{}) (int64, error)
	// Delete removes the expense owned by userID and returns the number
	// of rows affected.
	Delete(id, userID uuid.UUID) (int64, error)
	CountByUser(userID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the contract for user storage
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UpdateLastLogin(userID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log storage
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}
