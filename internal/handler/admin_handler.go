package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/middleware"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
	"github.com/mehraj28/Payroll-Mangement/pkg/response"
)

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	authService    service.AuthService
	salaryService  service.SalaryService
	expenseService service.ExpenseService
	reportService  service.ReportService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(
	authService service.AuthService,
	salaryService service.SalaryService,
	expenseService service.ExpenseService,
	reportService service.ReportService,
) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		salaryService:  salaryService,
		expenseService: expenseService,
		reportService:  reportService,
	}
}

// ListEmployees returns the full user directory
// GET /admin/employees
func (h *AdminHandler) ListEmployees(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	c.JSON(http.StatusOK, response.Success(out))
}

// ListPendingExpenses returns all expense claims awaiting a decision
// GET /admin/expenses/pending
func (h *AdminHandler) ListPendingExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewExpenseResponses(expenses)))
}

type decideExpenseBody struct {
	Comment string `json:"comment"`
}

// DecideExpense applies an approve or reject decision to a pending claim
// POST /admin/expenses/:id/action?action=approve|reject
func (h *AdminHandler) DecideExpense(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	action := domain.DecisionAction(c.Query("action"))
	if _, err := action.Status(); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Action must be 'approve' or 'reject'"))
		return
	}

	// The comment arrives as a query parameter; a JSON body is accepted too
	comment := c.Query("comment")
	if c.Request.ContentLength > 0 {
		var body decideExpenseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
			return
		}
		if body.Comment != "" {
			comment = body.Comment
		}
	}

	expense, err := h.expenseService.Decide(c.Request.Context(), claims, c.Param("id"), action, comment)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Expense not found"))
		case errors.Is(err, domain.ErrExpenseAlreadyDecided):
			c.JSON(http.StatusConflict, response.Error("INVALID_TRANSITION", "Expense has already been decided"))
		case errors.Is(err, domain.ErrInvalidDecision):
			c.JSON(http.StatusBadRequest, response.BadRequest("Action must be 'approve' or 'reject'"))
		default:
			c.JSON(http.StatusServiceUnavailable, response.StorageError())
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewExpenseResponse(expense)))
}

// CreateSlip issues a salary slip for an employee and pay period
// POST /admin/salary-slip
func (h *AdminHandler) CreateSlip(c *gin.Context) {
	var req dto.CreateSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	slip, err := h.salaryService.CreateSlip(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPeriod):
			c.JSON(http.StatusBadRequest, response.BadRequest("Month must be in YYYY-MM format"))
		case errors.Is(err, domain.ErrEmployeeNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Employee not found"))
		case errors.Is(err, domain.ErrDuplicateSlip):
			c.JSON(http.StatusConflict, response.Error("CONFLICT", "A slip already exists for this employee and month"))
		default:
			c.JSON(http.StatusServiceUnavailable, response.StorageError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewSlipResponse(slip)))
}

// DownloadSlip streams the payslip artifact for any slip
// GET /admin/salary-slip/:id/pdf
func (h *AdminHandler) DownloadSlip(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	artifact, err := h.salaryService.RenderPayslip(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlipNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Salary slip not found"))
		case errors.Is(err, domain.ErrForbidden):
			c.JSON(http.StatusForbidden, response.Forbidden("Insufficient permissions"))
		default:
			c.JSON(http.StatusServiceUnavailable, response.StorageError())
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// ReportsSummary returns the dashboard aggregates
// GET /admin/reports/summary
func (h *AdminHandler) ReportsSummary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(summary))
}
