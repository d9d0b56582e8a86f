package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/middleware"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *dto.SignupRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Resolve(ctx context.Context, token string) (*domain.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Claims), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// MockSalaryService is a mock implementation of SalaryService
type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) CreateSlip(ctx context.Context, req *dto.CreateSlipRequest) (*domain.SalarySlip, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalarySlip), args.Error(1)
}

func (m *MockSalaryService) ListSlips(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.SalarySlip, error) {
	args := m.Called(ctx, caller, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SalarySlip), args.Error(1)
}

func (m *MockSalaryService) RenderPayslip(ctx context.Context, caller *domain.Claims, slipID string) (*service.PayslipArtifact, error) {
	args := m.Called(ctx, caller, slipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PayslipArtifact), args.Error(1)
}

// MockExpenseService is a mock implementation of ExpenseService
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) Submit(ctx context.Context, caller *domain.Claims, req *dto.SubmitExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) Decide(ctx context.Context, caller *domain.Claims, expenseID string, action domain.DecisionAction, comment string) (*domain.Expense, error) {
	args := m.Called(ctx, caller, expenseID, action, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListPending(ctx context.Context) ([]*domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

func (m *MockExpenseService) ListForEmployee(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.Expense, error) {
	args := m.Called(ctx, caller, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Expense), args.Error(1)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

// claimsInjector stands in for the auth middleware, populating the
// request context from test headers
func claimsInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID != "" {
			role := domain.Role(c.GetHeader("X-User-Role"))
			c.Set(middleware.ClaimsKey, &domain.Claims{
				UserID: userID,
				Email:  userID + "@example.com",
				Role:   role,
			})
		}
		c.Next()
	}
}
