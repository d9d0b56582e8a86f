package dto

import (
	"time"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// SubmitExpenseRequest represents an employee expense claim
type SubmitExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
}

// ExpenseResponse represents an expense claim in responses
type ExpenseResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Category     string  `json:"category"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description,omitempty"`
	Status       string  `json:"status"`
	Date         string  `json:"date"`
	AdminComment string  `json:"admin_comment,omitempty"`
	DecidedBy    string  `json:"decided_by,omitempty"`
	DecidedAt    string  `json:"decided_at,omitempty"`
}

// NewExpenseResponse converts a domain expense to its response shape
func NewExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Category:     e.Category,
		Amount:       e.Amount,
		Description:  e.Description,
		Status:       e.Status.String(),
		Date:         e.SubmittedAt.Format(time.RFC3339),
		AdminComment: e.AdminComment,
		DecidedBy:    e.DecidedBy,
	}
	if e.DecidedAt != nil {
		resp.DecidedAt = e.DecidedAt.Format(time.RFC3339)
	}
	return resp
}

// NewExpenseResponses converts a slice of expenses, preserving order
func NewExpenseResponses(expenses []*domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}

// SummaryResponse represents the admin dashboard aggregates.
// TotalExpenseAmount sums every expense regardless of status.
type SummaryResponse struct {
	EmployeeCount       int64   `json:"employee_count"`
	PendingExpenseCount int64   `json:"pending_expense_count"`
	TotalExpenseAmount  float64 `json:"total_expense_amount"`
}
