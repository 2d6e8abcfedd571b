package services

import (
	"errors"
	"log/slog"
	"testing"

	"smartspend/internal/models"
	"smartspend/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuditServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	auditRepo    *repository_mocks.MockAuditLogRepositoryInterface
	auditService AuditServiceInterface
}

func (s *AuditServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.auditRepo = repository_mocks.NewMockAuditLogRepositoryInterface(s.ctrl)
	s.auditService = NewAuditService(s.auditRepo, slog.Default())
}

func (s *AuditServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditServiceSuite(t *testing.T) {
	suite.Run(t, new(AuditServiceTestSuite))
}

func (s *AuditServiceTestSuite) TestLogLogin() {
	userID := uuid.New()

	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionLogin, log.Action)
		s.Equal("auth", log.Resource)
		s.Equal(userID, *log.UserID)
		s.Equal("192.168.1.1", log.IPAddress)
		return nil
	}).Times(1)

	s.NoError(s.auditService.LogLogin(userID, "192.168.1.1", "Mozilla/5.0"))
}

func (s *AuditServiceTestSuite) TestLogFailedLoginHasNoUserID() {
	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionFailedLogin, log.Action)
		s.Nil(log.UserID)
		s.Contains(log.Details, "ghost")
		return nil
	}).Times(1)

	s.NoError(s.auditService.LogFailedLogin("ghost", "192.168.1.1", "Mozilla/5.0"))
}

func (s *AuditServiceTestSuite) TestLogExpenseCreatedCarriesResourceID() {
	userID := uuid.New()
	expenseID := uuid.New()

	s.auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *models.AuditLog) error {
		s.Equal(models.AuditActionExpenseCreated, log.Action)
		s.Equal("expense", log.Resource)
		s.Equal(expenseID.String(), log.ResourceID)
		return nil
	}).Times(1)

	s.NoError(s.auditService.LogExpenseCreated(userID, expenseID, "192.168.1.1", "Mozilla/5.0"))
}

func (s *AuditServiceTestSuite) TestCreateFailurePropagates() {
	userID := uuid.New()

	s.auditRepo.EXPECT().Create(gomock.Any()).Return(errors.New("disk full")).Times(1)

	s.Error(s.auditService.LogLogin(userID, "192.168.1.1", "Mozilla/5.0"))
}
