package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaches
const uniqueViolation = "23505"

// PostgresSalaryRepository implements SalaryRepository using PostgreSQL
type PostgresSalaryRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSalaryRepository creates a new PostgresSalaryRepository
func NewPostgresSalaryRepository(pool *pgxpool.Pool) *PostgresSalaryRepository {
	return &PostgresSalaryRepository{pool: pool}
}

// Create inserts a slip. The uniqueness check and the insert are a single
// statement; the UNIQUE (employee_id, period) constraint decides races.
func (r *PostgresSalaryRepository) Create(ctx context.Context, slip *domain.SalarySlip) error {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.salary.create")
	defer span.End()

	span.SetAttributes(
		attribute.String("slip_id", slip.ID),
		attribute.String("employee_id", slip.EmployeeID),
		attribute.String("period", slip.Period),
	)

	query := `
		INSERT INTO salary_slips (id, employee_id, period, basic, allowances, deductions, net_pay, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		slip.ID,
		slip.EmployeeID,
		slip.Period,
		slip.Basic,
		slip.Allowances,
		slip.Deductions,
		slip.NetPay,
		slip.Notes,
		slip.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			span.SetStatus(codes.Error, "duplicate period")
			return domain.ErrDuplicateSlip
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("failed to create salary slip: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetByID retrieves a slip by ID
func (r *PostgresSalaryRepository) GetByID(ctx context.Context, id string) (*domain.SalarySlip, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.salary.get_by_id")
	defer span.End()

	span.SetAttributes(attribute.String("slip_id", id))

	query := `
		SELECT id, employee_id, period, basic, allowances, deductions, net_pay, notes, created_at
		FROM salary_slips
		WHERE id = $1
	`
	slip := &domain.SalarySlip{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&slip.ID,
		&slip.EmployeeID,
		&slip.Period,
		&slip.Basic,
		&slip.Allowances,
		&slip.Deductions,
		&slip.NetPay,
		&slip.Notes,
		&slip.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to get salary slip: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return slip, nil
}

// ListByEmployee retrieves an employee's slips ordered by period ascending
func (r *PostgresSalaryRepository) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.SalarySlip, error) {
	ctx, span := telemetry.StartSpan(ctx, "repo.postgres.salary.list_by_employee")
	defer span.End()

	span.SetAttributes(attribute.String("employee_id", employeeID))

	query := `
		SELECT id, employee_id, period, basic, allowances, deductions, net_pay, notes, created_at
		FROM salary_slips
		WHERE employee_id = $1
		ORDER BY period
	`
	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var slips []*domain.SalarySlip
	for rows.Next() {
		slip := &domain.SalarySlip{}
		if err := rows.Scan(
			&slip.ID,
			&slip.EmployeeID,
			&slip.Period,
			&slip.Basic,
			&slip.Allowances,
			&slip.Deductions,
			&slip.NetPay,
			&slip.Notes,
			&slip.CreatedAt,
		); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, slip)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to read salary slips: %w", err)
	}

	span.SetStatus(codes.Ok, "")
	return slips, nil
}
