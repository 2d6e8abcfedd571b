package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smartspend/internal/dto"
	"smartspend/internal/models"
	"smartspend/internal/services"
	"smartspend/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestExpenseHandler(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	expenseService *service_mocks.MockExpenseServiceInterface
	auditService   *service_mocks.MockAuditServiceInterface
	handler        *ExpenseHandler
	e              *echo.Echo
	userID         uuid.UUID
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.expenseService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.expenseService, s.auditService)
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.userID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerSuite) newContext(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var reader *bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return rec, c
}

func (s *ExpenseHandlerSuite) TestCreateExpense_Success() {
	amount := decimal.RequireFromString("42.50")
	created := &models.Expense{
		ID:       uuid.New(),
		UserID:   s.userID,
		Category: models.CategoryFood,
		Amount:   amount,
		Date:     time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
	}

	s.expenseService.EXPECT().
		AddExpense(s.userID, "Food", amount, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), "groceries").
		Return(created, nil).
		Times(1)

	s.auditService.EXPECT().
		LogExpenseCreated(s.userID, created.ID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	rec, c := s.newContext(http.MethodPost, "/expenses", map[string]interface{}{
		"category":    "Food",
		"amount":      "42.50",
		"date":        "2024-03-15",
		"description": "groceries",
	})

	s.NoError(s.handler.CreateExpense(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_AuditFailureDoesNotFailRequest() {
	amount := decimal.RequireFromString("10")
	created := &models.Expense{ID: uuid.New(), UserID: s.userID, Category: models.CategoryFood, Amount: amount}

	s.expenseService.EXPECT().
		AddExpense(s.userID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(created, nil).
		Times(1)

	s.auditService.EXPECT().
		LogExpenseCreated(s.userID, created.ID, gomock.Any(), gomock.Any()).
		Return(errors.New("audit insert failed")).
		Times(1)

	rec, c := s.newContext(http.MethodPost, "/expenses", map[string]interface{}{
		"category": "Food",
		"amount":   "10",
		"date":     "2024-03-15",
	})

	s.NoError(s.handler.CreateExpense(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_InvalidAmountFailsValidation() {
	rec, c := s.newContext(http.MethodPost, "/expenses", map[string]interface{}{
		"category": "Food",
		"amount":   "-5.00",
		"date":     "2024-03-15",
	})

	err := s.handler.CreateExpense(c)
	s.Error(err)
	s.Zero(rec.Body.Len())
}

func (s *ExpenseHandlerSuite) TestCreateExpense_UnknownCategoryFailsValidation() {
	_, c := s.newContext(http.MethodPost, "/expenses", map[string]interface{}{
		"category": "Gambling",
		"amount":   "5.00",
		"date":     "2024-03-15",
	})

	s.Error(s.handler.CreateExpense(c))
}

func (s *ExpenseHandlerSuite) TestCreateExpense_MissingUserContext() {
	req := httptest.NewRequest(http.MethodPost, "/expenses", bytes.NewBufferString("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.CreateExpense(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ExpenseHandlerSuite) TestListExpenses() {
	expenses := []models.Expense{
		{ID: uuid.New(), UserID: s.userID, Category: models.CategoryFood, Amount: decimal.RequireFromString("12.00"), Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), UserID: s.userID, Category: models.CategoryTransport, Amount: decimal.RequireFromString("8.50"), Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}

	s.expenseService.EXPECT().ListExpenses(s.userID).Return(expenses, nil).Times(1)

	rec, c := s.newContext(http.MethodGet, "/expenses", nil)

	s.NoError(s.handler.ListExpenses(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListExpensesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Count)
	s.Len(response.Expenses, 2)
	s.Equal("2024-03-01", response.Expenses[0].Date)
}

func (s *ExpenseHandlerSuite) TestListExpenses_Empty() {
	s.expenseService.EXPECT().ListExpenses(s.userID).Return([]models.Expense{}, nil).Times(1)

	rec, c := s.newContext(http.MethodGet, "/expenses", nil)

	s.NoError(s.handler.ListExpenses(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListExpensesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(0, response.Count)
	s.NotNil(response.Expenses)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_Success() {
	expenseID := uuid.New()
	newCategory := "Transport"

	s.expenseService.EXPECT().
		UpdateExpense(expenseID, s.userID, gomock.Any()).
		DoAndReturn(func(_, _ uuid.UUID, updates *dto.UpdateExpenseRequest) error {
			s.Require().NotNil(updates.Category)
			s.Equal(newCategory, *updates.Category)
			return nil
		}).
		Times(1)

	s.auditService.EXPECT().
		LogExpenseUpdated(s.userID, expenseID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	rec, c := s.newContext(http.MethodPatch, "/expenses/"+expenseID.String(), map[string]interface{}{
		"category": newCategory,
	})
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_NotFound() {
	expenseID := uuid.New()

	s.expenseService.EXPECT().
		UpdateExpense(expenseID, s.userID, gomock.Any()).
		Return(services.ErrExpenseNotFound).
		Times(1)

	rec, c := s.newContext(http.MethodPatch, "/expenses/"+expenseID.String(), map[string]interface{}{
		"category": "Food",
	})
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("EXPENSE_001", response.Error.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_NoFields() {
	expenseID := uuid.New()

	s.expenseService.EXPECT().
		UpdateExpense(expenseID, s.userID, gomock.Any()).
		Return(services.ErrNoFieldsToUpdate).
		Times(1)

	rec, c := s.newContext(http.MethodPatch, "/expenses/"+expenseID.String(), map[string]interface{}{})
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestUpdateExpense_MalformedID() {
	rec, c := s.newContext(http.MethodPatch, "/expenses/not-a-uuid", map[string]interface{}{
		"category": "Food",
	})
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	s.NoError(s.handler.UpdateExpense(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense_Success() {
	expenseID := uuid.New()

	s.expenseService.EXPECT().DeleteExpense(expenseID, s.userID).Return(nil).Times(1)
	s.auditService.EXPECT().
		LogExpenseDeleted(s.userID, expenseID, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	rec, c := s.newContext(http.MethodDelete, "/expenses/"+expenseID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.DeleteExpense(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerSuite) TestDeleteExpense_ForeignExpense() {
	expenseID := uuid.New()

	s.expenseService.EXPECT().
		DeleteExpense(expenseID, s.userID).
		Return(services.ErrExpenseNotFound).
		Times(1)

	rec, c := s.newContext(http.MethodDelete, "/expenses/"+expenseID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(expenseID.String())

	s.NoError(s.handler.DeleteExpense(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ExpenseHandlerSuite) TestExportExpenses() {
	csv := []byte("date,category,amount,description\n2024-03-15,Food,42.50,groceries\n")

	s.expenseService.EXPECT().ExportCSV(s.userID).Return(csv, nil).Times(1)

	rec, c := s.newContext(http.MethodGet, "/expenses/export", nil)

	s.NoError(s.handler.ExportExpenses(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get(echo.HeaderContentType))

	disposition := rec.Header().Get(echo.HeaderContentDisposition)
	s.True(strings.HasPrefix(disposition, `attachment; filename="expenses_`))
	s.True(strings.HasSuffix(disposition, `.csv"`))

	s.Equal(csv, rec.Body.Bytes())
}
