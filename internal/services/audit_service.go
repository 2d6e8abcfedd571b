package services

import (
	"fmt"
	"log/slog"

	"smartspend/internal/models"
	"smartspend/internal/repositories"

	"github.com/google/uuid"
)

const (
	auditResourceAuth    = "auth"
	auditResourceExpense = "expense"
)

// auditService persists an audit trail of logins and expense mutations
type auditService struct {
	auditRepo repositories.AuditLogRepositoryInterface
	logger    *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *auditService) LogLogin(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.record(&userID, models.AuditActionLogin, auditResourceAuth, "", ipAddress, userAgent, "")
}

func (s *auditService) LogFailedLogin(username, ipAddress, userAgent string) error {
	details := fmt.Sprintf("failed login attempt for username %q", username)
	return s.record(nil, models.AuditActionFailedLogin, auditResourceAuth, "", ipAddress, userAgent, details)
}

func (s *auditService) LogRegister(userID uuid.UUID, ipAddress, userAgent string) error {
	return s.record(&userID, models.AuditActionRegister, auditResourceAuth, "", ipAddress, userAgent, "")
}

func (s *auditService) LogExpenseCreated(userID, expenseID uuid.UUID, ipAddress, userAgent string) error {
	return s.record(&userID, models.AuditActionExpenseCreated, auditResourceExpense, expenseID.String(), ipAddress, userAgent, "")
}

func (s *auditService) LogExpenseUpdated(userID, expenseID uuid.UUID, ipAddress, userAgent string) error {
	return s.record(&userID, models.AuditActionExpenseUpdated, auditResourceExpense, expenseID.String(), ipAddress, userAgent, "")
}

func (s *auditService) LogExpenseDeleted(userID, expenseID uuid.UUID, ipAddress, userAgent string) error {
	return s.record(&userID, models.AuditActionExpenseDeleted, auditResourceExpense, expenseID.String(), ipAddress, userAgent, "")
}

func (s *auditService) record(userID *uuid.UUID, action, resource, resourceID, ipAddress, userAgent, details string) error {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Details:    details,
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to persist audit log", "action", action, "error", err)
		return err
	}

	return nil
}
