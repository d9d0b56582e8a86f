package dto

import (
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// CreateSlipRequest represents an admin request to issue a salary slip.
// Basic has no lower bound, so it carries no required tag; a zero basic
// is a legitimate slip. Allowances and deductions default to zero.
type CreateSlipRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Month      string  `json:"month" binding:"required"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	Notes      string  `json:"notes"`
}

// SlipResponse represents a salary slip in responses
type SlipResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Month      string  `json:"month"`
	Basic      float64 `json:"basic"`
	Allowances float64 `json:"allowances"`
	Deductions float64 `json:"deductions"`
	NetPay     float64 `json:"net_pay"`
	Notes      string  `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

// NewSlipResponse converts a domain slip to its response shape
func NewSlipResponse(s *domain.SalarySlip) SlipResponse {
	return SlipResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Month:      s.Period,
		Basic:      s.Basic,
		Allowances: s.Allowances,
		Deductions: s.Deductions,
		NetPay:     s.NetPay,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// NewSlipResponses converts a slice of slips, preserving order
func NewSlipResponses(slips []*domain.SalarySlip) []SlipResponse {
	out := make([]SlipResponse, 0, len(slips))
	for _, s := range slips {
		out = append(out, NewSlipResponse(s))
	}
	return out
}
