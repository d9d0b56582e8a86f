package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PostgresExpenseRepository implements ExpenseRepository using PostgreSQL
type PostgresExpenseRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresExpenseRepository creates a new PostgresExpenseRepository
func NewPostgresExpenseRepository(pool *pgxpool.Pool) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{pool: pool}
}

// Create inserts a new expense in pending state
func (r *PostgresExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("expense_id", expense.ID),
		attribute.String("employee_id", expense.EmployeeID),
	)

	query := `
		INSERT INTO expenses (id, employee_id, category, amount, description, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		expense.ID,
		expense.EmployeeID,
		expense.Category,
		expense.Amount,
		expense.Description,
		expense.Status.String(),
		expense.SubmittedAt,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create expense: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves an expense by ID
func (r *PostgresExpenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("expense_id", id))

	query := `
		SELECT id, employee_id, category, amount, description, status,
		       submitted_at, admin_comment, decided_by, decided_at
		FROM expenses
		WHERE id = $1
	`
	expense, err := scanExpense(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return expense, nil
}

// ListByEmployee retrieves an employee's expenses, newest first
func (r *PostgresExpenseRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.list_by_employee")
	defer span.End()

	span.SetAttributes(attribute.String("employee_id", employeeID))

	query := `
		SELECT id, employee_id, category, amount, description, status,
		       submitted_at, admin_comment, decided_by, decided_at
		FROM expenses
		WHERE employee_id = $1
		ORDER BY submitted_at DESC
	`
	expenses, err := r.queryExpenses(ctx, query, employeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return expenses, nil
}

// ListPending retrieves all pending expenses, newest first
func (r *PostgresExpenseRepository) ListPending(ctx context.Context) ([]*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.list_pending")
	defer span.End()

	query := `
		SELECT id, employee_id, category, amount, description, status,
		       submitted_at, admin_comment, decided_by, decided_at
		FROM expenses
		WHERE status = 'pending'
		ORDER BY submitted_at DESC
	`
	expenses, err := r.queryExpenses(ctx, query)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return expenses, nil
}

// Decide atomically transitions a pending expense to a terminal status.
// The status guard in the WHERE clause makes concurrent decisions race
// safely: one caller updates the row, the rest see zero rows affected.
func (r *PostgresExpenseRepository) Decide(ctx context.Context, id string, decision Decision) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.decide")
	defer span.End()

	span.SetAttributes(
		attribute.String("expense_id", id),
		attribute.String("status", decision.Status.String()),
	)

	query := `
		UPDATE expenses SET
			status = $2,
			decided_by = $3,
			decided_at = $4,
			admin_comment = $5
		WHERE id = $1 AND status = 'pending'
	`
	result, err := r.pool.Exec(ctx, query,
		id,
		decision.Status.String(),
		decision.DecidedBy,
		decision.DecidedAt,
		decision.Comment,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to decide expense: %w", err)
	}

	if result.RowsAffected() == 0 {
		// Check if the expense exists at all
		var exists bool
		err := r.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM expenses WHERE id = $1)", id).Scan(&exists)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("failed to check expense existence: %w", err)
		}
		if !exists {
			span.SetStatus(codes.Error, "not found")
			return domain.ErrExpenseNotFound
		}
		span.SetStatus(codes.Error, "already decided")
		return domain.ErrExpenseAlreadyDecided
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// CountPending counts expenses currently in pending state
func (r *PostgresExpenseRepository) CountPending(ctx context.Context) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.count_pending")
	defer span.End()

	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM expenses WHERE status = 'pending'`).Scan(&count)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("failed to count pending expenses: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return count, nil
}

// SumAmounts sums amounts across all expenses regardless of status
func (r *PostgresExpenseRepository) SumAmounts(ctx context.Context) (float64, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.expense.sum_amounts")
	defer span.End()

	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("failed to sum expense amounts: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return total, nil
}

func (r *PostgresExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]*domain.Expense, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}
	return expenses, nil
}

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	expense := &domain.Expense{}
	var (
		status       string
		adminComment *string
		decidedBy    *string
	)
	err := row.Scan(
		&expense.ID,
		&expense.EmployeeID,
		&expense.Category,
		&expense.Amount,
		&expense.Description,
		&status,
		&expense.SubmittedAt,
		&adminComment,
		&decidedBy,
		&expense.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	expense.Status = domain.ExpenseStatus(status)
	if adminComment != nil {
		expense.AdminComment = *adminComment
	}
	if decidedBy != nil {
		expense.DecidedBy = *decidedBy
	}
	return expense, nil
}
