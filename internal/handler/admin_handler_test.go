package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
)

func setupAdminTestRouter(auth *MockAuthService, salary *MockSalaryService, expense *MockExpenseService, report *MockReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAdminHandler(auth, salary, expense, report)

	router := gin.New()
	router.Use(claimsInjector())

	admin := router.Group("/admin")
	{
		admin.GET("/employees", handler.ListEmployees)
		admin.GET("/expenses/pending", handler.ListPendingExpenses)
		admin.POST("/expenses/:id/action", handler.DecideExpense)
		admin.POST("/salary-slip", handler.CreateSlip)
		admin.GET("/salary-slip/:id/pdf", handler.DownloadSlip)
		admin.GET("/reports/summary", handler.ReportsSummary)
	}

	return router
}

func adminHeaders(req *http.Request) {
	req.Header.Set("X-User-ID", "admin-1")
	req.Header.Set("X-User-Role", "admin")
}

func TestAdminHandler_DecideExpense_Approve(t *testing.T) {
	auth := new(MockAuthService)
	salary := new(MockSalaryService)
	expense := new(MockExpenseService)
	report := new(MockReportService)
	router := setupAdminTestRouter(auth, salary, expense, report)

	decidedAt := time.Now()
	decided := &domain.Expense{
		ID:           "exp-1",
		EmployeeID:   "emp-1",
		Category:     "travel",
		Amount:       100,
		Status:       domain.ExpenseStatusApproved,
		SubmittedAt:  decidedAt.Add(-time.Hour),
		AdminComment: "receipts verified",
		DecidedBy:    "admin-1",
		DecidedAt:    &decidedAt,
	}
	expense.On("Decide", mock.Anything, mock.AnythingOfType("*domain.Claims"), "exp-1", domain.DecisionApprove, "receipts verified").Return(decided, nil)

	body, _ := json.Marshal(map[string]string{"comment": "receipts verified"})
	req, _ := http.NewRequest("POST", "/admin/expenses/exp-1/action?action=approve", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	expense.AssertExpectations(t)
}

func TestAdminHandler_DecideExpense_CommentFromQuery(t *testing.T) {
	expense := new(MockExpenseService)
	router := setupAdminTestRouter(new(MockAuthService), new(MockSalaryService), expense, new(MockReportService))

	decidedAt := time.Now()
	decided := &domain.Expense{
		ID:           "exp-2",
		EmployeeID:   "emp-1",
		Category:     "meals",
		Amount:       42,
		Status:       domain.ExpenseStatusRejected,
		SubmittedAt:  decidedAt.Add(-time.Hour),
		AdminComment: "missing receipt",
		DecidedBy:    "admin-1",
		DecidedAt:    &decidedAt,
	}
	expense.On("Decide", mock.Anything, mock.AnythingOfType("*domain.Claims"), "exp-2", domain.DecisionReject, "missing receipt").Return(decided, nil)

	req, _ := http.NewRequest("POST", "/admin/expenses/exp-2/action?action=reject&comment=missing+receipt", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	expense.AssertExpectations(t)
}

func TestAdminHandler_DecideExpense_InvalidAction(t *testing.T) {
	router := setupAdminTestRouter(new(MockAuthService), new(MockSalaryService), new(MockExpenseService), new(MockReportService))

	req, _ := http.NewRequest("POST", "/admin/expenses/exp-1/action?action=escalate", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_DecideExpense_AlreadyDecided(t *testing.T) {
	expense := new(MockExpenseService)
	router := setupAdminTestRouter(new(MockAuthService), new(MockSalaryService), expense, new(MockReportService))

	expense.On("Decide", mock.Anything, mock.AnythingOfType("*domain.Claims"), "exp-1", domain.DecisionReject, "").Return(nil, domain.ErrExpenseAlreadyDecided)

	req, _ := http.NewRequest("POST", "/admin/expenses/exp-1/action?action=reject", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_DecideExpense_NotFound(t *testing.T) {
	expense := new(MockExpenseService)
	router := setupAdminTestRouter(new(MockAuthService), new(MockSalaryService), expense, new(MockReportService))

	expense.On("Decide", mock.Anything, mock.AnythingOfType("*domain.Claims"), "missing", domain.DecisionApprove, "").Return(nil, domain.ErrExpenseNotFound)

	req, _ := http.NewRequest("POST", "/admin/expenses/missing/action?action=approve", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminHandler_CreateSlip_Success(t *testing.T) {
	salary := new(MockSalaryService)
	router := setupAdminTestRouter(new(MockAuthService), salary, new(MockExpenseService), new(MockReportService))

	slip := &domain.SalarySlip{
		ID:         "slip-1",
		EmployeeID: "emp-1",
		Period:     "2024-05",
		Basic:      50000,
		Allowances: 5000,
		Deductions: 2000,
		NetPay:     53000,
		CreatedAt:  time.Now(),
	}
	salary.On("CreateSlip", mock.Anything, mock.AnythingOfType("*dto.CreateSlipRequest")).Return(slip, nil)

	body, _ := json.Marshal(dto.CreateSlipRequest{
		EmployeeID: "emp-1",
		Month:      "2024-05",
		Basic:      50000,
		Allowances: 5000,
		Deductions: 2000,
	})
	req, _ := http.NewRequest("POST", "/admin/salary-slip", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "53000")
	salary.AssertExpectations(t)
}

func TestAdminHandler_CreateSlip_ZeroBasic(t *testing.T) {
	salary := new(MockSalaryService)
	router := setupAdminTestRouter(new(MockAuthService), salary, new(MockExpenseService), new(MockReportService))

	slip := &domain.SalarySlip{
		ID:         "slip-2",
		EmployeeID: "emp-1",
		Period:     "2024-06",
		Basic:      0,
		Deductions: 150,
		NetPay:     -150,
		CreatedAt:  time.Now(),
	}
	salary.On("CreateSlip", mock.Anything, mock.AnythingOfType("*dto.CreateSlipRequest")).Return(slip, nil)

	// An unpaid-leave month carries a zero basic and may net negative
	body, _ := json.Marshal(dto.CreateSlipRequest{EmployeeID: "emp-1", Month: "2024-06", Deductions: 150})
	req, _ := http.NewRequest("POST", "/admin/salary-slip", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "-150")
	salary.AssertExpectations(t)
}

func TestAdminHandler_CreateSlip_Duplicate(t *testing.T) {
	salary := new(MockSalaryService)
	router := setupAdminTestRouter(new(MockAuthService), salary, new(MockExpenseService), new(MockReportService))

	salary.On("CreateSlip", mock.Anything, mock.AnythingOfType("*dto.CreateSlipRequest")).Return(nil, domain.ErrDuplicateSlip)

	body, _ := json.Marshal(dto.CreateSlipRequest{EmployeeID: "emp-1", Month: "2024-05", Basic: 50000})
	req, _ := http.NewRequest("POST", "/admin/salary-slip", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminHandler_CreateSlip_InvalidPeriod(t *testing.T) {
	salary := new(MockSalaryService)
	router := setupAdminTestRouter(new(MockAuthService), salary, new(MockExpenseService), new(MockReportService))

	salary.On("CreateSlip", mock.Anything, mock.AnythingOfType("*dto.CreateSlipRequest")).Return(nil, domain.ErrInvalidPeriod)

	body, _ := json.Marshal(dto.CreateSlipRequest{EmployeeID: "emp-1", Month: "05-2024", Basic: 50000})
	req, _ := http.NewRequest("POST", "/admin/salary-slip", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminHandler_ReportsSummary(t *testing.T) {
	report := new(MockReportService)
	router := setupAdminTestRouter(new(MockAuthService), new(MockSalaryService), new(MockExpenseService), report)

	report.On("Summary", mock.Anything).Return(&dto.SummaryResponse{
		EmployeeCount:       4,
		PendingExpenseCount: 2,
		TotalExpenseAmount:  310.75,
	}, nil)

	req, _ := http.NewRequest("GET", "/admin/reports/summary", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"employee_count\":4")
	assert.Contains(t, w.Body.String(), "310.75")
}

func TestAdminHandler_ListEmployees(t *testing.T) {
	auth := new(MockAuthService)
	router := setupAdminTestRouter(auth, new(MockSalaryService), new(MockExpenseService), new(MockReportService))

	auth.On("ListUsers", mock.Anything).Return([]*domain.User{
		{ID: "admin-1", Email: "admin@example.com", Role: domain.RoleAdmin, CreatedAt: time.Now()},
		{ID: "emp-1", Email: "emp@example.com", Role: domain.RoleEmployee, CreatedAt: time.Now()},
	}, nil)

	req, _ := http.NewRequest("GET", "/admin/employees", nil)
	adminHeaders(req)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "emp@example.com")
	assert.Contains(t, w.Body.String(), "admin@example.com")
}
