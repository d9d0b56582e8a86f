package repository

import (
	"context"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// SalaryRepository defines persistence operations for salary slips
type SalaryRepository interface {
	// Create inserts a slip. The (employee_id, period) pair is unique;
	// a duplicate insert fails with domain.ErrDuplicateSlip.
	Create(ctx context.Context, slip *domain.SalarySlip) error
	// GetByID retrieves a slip by ID; returns nil, nil when absent
	GetByID(ctx context.Context, id string) (*domain.SalarySlip, error)
	// ListByEmployee retrieves an employee's slips ordered by period ascending
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.SalarySlip, error)
}
