package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ahmadps/poultry_ledger_app/internal/apperrors"
	"github.com/ahmadps/poultry_ledger_app/internal/core/domain"
	"github.com/ahmadps/poultry_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/ahmadps/poultry_ledger_app/internal/core/ports/services"
	"github.com/ahmadps/poultry_ledger_app/internal/dto"
	"github.com/ahmadps/poultry_ledger_app/internal/handlers"
	"github.com/ahmadps/poultry_ledger_app/internal/platform/config"
	"github.com/ahmadps/poultry_ledger_app/internal/utils"
)

// --- Mock CustomerService ---

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, filter repositories.ListFilter) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, filter)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerService) CustomerStatement(ctx context.Context, customerID int64, from, to *time.Time) (*domain.CustomerStatement, error) {
	args := m.Called(ctx, customerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerStatement), args.Error(1)
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customerID int64, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, customerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCustomerService
	cfg         *config.Config
	token       string
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.cfg = &config.Config{
		JWTSecret:                  "test-secret",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "test",
		RefreshTokenSecret:         "test-refresh-secret",
		RefreshTokenExpiryDuration: time.Hour,
		DefaultPageSize:            20,
		MaxPageSize:                100,
		IsProduction:               true,
	}
	s.mockService = new(MockCustomerService)

	services := &portssvc.ServiceContainer{Customer: s.mockService}
	s.router = gin.New()
	handlers.RegisterRoutes(s.router, s.cfg, services)

	token, err := utils.GenerateJWT("test-user", s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	s.Require().NoError(err)
	s.token = token
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Success() {
	customer := &domain.Customer{
		CustomerID:     1,
		Name:           "Ali Traders",
		RunningBalance: decimal.NewFromInt(500),
		IsActive:       true,
	}
	s.mockService.On("GetCustomerByID", mock.Anything, int64(1)).Return(customer, nil).Once()

	w := s.request(http.MethodGet, "/api/v1/customers/1", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.CustomerResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.ID)
	s.Equal("Ali Traders", resp.Name)
	s.mockService.AssertExpectations(s.T())
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	s.mockService.On("GetCustomerByID", mock.Anything, int64(42)).Return(nil, apperrors.ErrNotFound).Once()

	w := s.request(http.MethodGet, "/api/v1/customers/42", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_InvalidID() {
	w := s.request(http.MethodGet, "/api/v1/customers/abc", nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "GetCustomerByID", mock.Anything, mock.Anything)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/1", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	created := &domain.Customer{CustomerID: 7, Name: "Karim Poultry", IsActive: true}
	s.mockService.On("CreateCustomer", mock.Anything, mock.MatchedBy(func(req dto.CreateCustomerRequest) bool {
		return req.Name == "Karim Poultry"
	})).Return(created, nil).Once()

	w := s.request(http.MethodPost, "/api/v1/customers", gin.H{"name": "Karim Poultry"})

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.CustomerResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(7), resp.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *CustomerHandlerTestSuite) TestCreateCustomer_ValidationError() {
	ve := apperrors.ValidationErrors{}
	ve.Add("name", "is required")
	s.mockService.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, ve).Once()

	w := s.request(http.MethodPost, "/api/v1/customers", gin.H{"name": "x"})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "errors")
}

func (s *CustomerHandlerTestSuite) TestUpdateCustomer_PutAndPatch() {
	updated := &domain.Customer{CustomerID: 3, Name: "Ali Sons", IsActive: true}
	s.mockService.On("UpdateCustomer", mock.Anything, int64(3), mock.MatchedBy(func(req dto.UpdateCustomerRequest) bool {
		return req.Name != nil && *req.Name == "Ali Sons"
	})).Return(updated, nil).Twice()

	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		w := s.request(method, "/api/v1/customers/3", gin.H{"name": "Ali Sons"})

		s.Equal(http.StatusOK, w.Code)
		var resp dto.CustomerResponse
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
		s.Equal("Ali Sons", resp.Name)
	}
	s.mockService.AssertExpectations(s.T())
}

func (s *CustomerHandlerTestSuite) TestListCustomers_Envelope() {
	customers := []domain.Customer{
		{CustomerID: 1, Name: "A"},
		{CustomerID: 2, Name: "B"},
	}
	s.mockService.On("ListCustomers", mock.Anything, mock.MatchedBy(func(f repositories.ListFilter) bool {
		return f.Limit == 2 && f.Offset == 0
	})).Return(customers, int64(5), nil).Once()

	w := s.request(http.MethodGet, "/api/v1/customers?limit=2", nil)

	s.Equal(http.StatusOK, w.Code)
	var resp dto.ListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(int64(5), resp.Count)
	s.Require().NotNil(resp.Next)
	s.Contains(*resp.Next, "offset=2")
	s.Contains(*resp.Next, "http://example.com/api/v1/customers")
	s.Nil(resp.Previous)
	s.mockService.AssertExpectations(s.T())
}

func (s *CustomerHandlerTestSuite) TestDeleteCustomer_WithLedgerEntries() {
	s.mockService.On("DeleteCustomer", mock.Anything, int64(1)).Return(apperrors.ErrConflict).Once()

	w := s.request(http.MethodDelete, "/api/v1/customers/1", nil)

	s.Equal(http.StatusConflict, w.Code)
}
