package repository

import (
	"context"
	"time"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// Decision carries the admin verdict applied to a pending expense
type Decision struct {
	Status    domain.ExpenseStatus
	DecidedBy string
	DecidedAt time.Time
	Comment   string
}

// ExpenseRepository defines persistence operations for expense claims
type ExpenseRepository interface {
	// Create inserts a new expense in pending state
	Create(ctx context.Context, expense *domain.Expense) error
	// GetByID retrieves an expense by ID; returns nil, nil when absent
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	// ListByEmployee retrieves an employee's expenses, newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Expense, error)
	// ListPending retrieves all pending expenses, newest first
	ListPending(ctx context.Context) ([]*domain.Expense, error)
	// Decide atomically transitions a pending expense to the decision's
	// terminal status. Exactly one concurrent caller wins; the rest get
	// domain.ErrExpenseAlreadyDecided, or domain.ErrExpenseNotFound when
	// the id is unknown.
	Decide(ctx context.Context, id string, decision Decision) error
	// CountPending counts expenses currently in pending state
	CountPending(ctx context.Context) (int64, error)
	// SumAmounts sums amounts across all expenses regardless of status
	SumAmounts(ctx context.Context) (float64, error)
}
