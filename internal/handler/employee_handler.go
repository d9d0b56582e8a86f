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

// EmployeeHandler handles employee self-service HTTP requests
type EmployeeHandler struct {
	salaryService  service.SalaryService
	expenseService service.ExpenseService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(salaryService service.SalaryService, expenseService service.ExpenseService) *EmployeeHandler {
	return &EmployeeHandler{
		salaryService:  salaryService,
		expenseService: expenseService,
	}
}

// ListSlips returns the caller's salary slips, earliest period first
// GET /employee/salary-slip
func (h *EmployeeHandler) ListSlips(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	slips, err := h.salaryService.ListSlips(c.Request.Context(), claims, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden("Insufficient permissions"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewSlipResponses(slips)))
}

// DownloadSlip streams the payslip artifact for a slip the caller owns
// GET /employee/salary-slip/:id/pdf
func (h *EmployeeHandler) DownloadSlip(c *gin.Context) {
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

// ListExpenses returns the caller's expense claims, newest first
// GET /employee/expense
func (h *EmployeeHandler) ListExpenses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	expenses, err := h.expenseService.ListForEmployee(c.Request.Context(), claims, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			c.JSON(http.StatusForbidden, response.Forbidden("Insufficient permissions"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewExpenseResponses(expenses)))
}

// SubmitExpense files a new expense claim for the caller
// POST /employee/expense
func (h *EmployeeHandler) SubmitExpense(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	var req dto.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	expense, err := h.expenseService.Submit(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, response.BadRequest("Amount must be a positive number"))
		case errors.Is(err, domain.ErrMissingCategory):
			c.JSON(http.StatusBadRequest, response.BadRequest("Category is required"))
		default:
			c.JSON(http.StatusServiceUnavailable, response.StorageError())
		}
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewExpenseResponse(expense)))
}
