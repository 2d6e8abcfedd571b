package services

import (
	"time"

	"smartspend/internal/dto"
	"smartspend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseServiceInterface defines expense CRUD and analytics operations.
// All analytics calls take an explicit reference instant so results are
// reproducible without wall-clock mocking.
type ExpenseServiceInterface interface {
	AddExpense(userID uuid.UUID, category string, amount decimal.Decimal, date time.Time, description string) (*models.Expense, error)
	UpdateExpense(expenseID, userID uuid.UUID, updates *dto.UpdateExpenseRequest) error
	DeleteExpense(expenseID, userID uuid.UUID) error
	ListExpenses(userID uuid.UUID) ([]models.Expense, error)
	GetSummary(userID uuid.UUID, now time.Time) (*models.ExpenseSummary, error)
	GetSeries(userID uuid.UUID, now time.Time) (*models.DashboardSeries, error)
	ExportCSV(userID uuid.UUID) ([]byte, error)
}

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, *models.User, error)
	RefreshTokens(refreshToken string) (*dto.TokenResponse, error)
	GetProfile(userID uuid.UUID) (*models.User, error)
}

// PasswordServiceInterface defines password hashing and policy checks
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hashedPassword, password string) bool
	ValidatePassword(password string) error
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuditServiceInterface defines the contract for audit logging operations
type AuditServiceInterface interface {
	LogLogin(userID uuid.UUID, ipAddress, userAgent string) error
	LogFailedLogin(username, ipAddress, userAgent string) error
	LogRegister(userID uuid.UUID, ipAddress, userAgent string) error
	LogExpenseCreated(userID, expenseID uuid.UUID, ipAddress, userAgent string) error
	LogExpenseUpdated(userID, expenseID uuid.UUID, ipAddress, userAgent string) error
	LogExpenseDeleted(userID, expenseID uuid.UUID, ipAddress, userAgent string) error
}

// MetricsRecorderInterface abstracts metric recording so services do not
// depend on the Prometheus client directly
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
