package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema if it does not already exist. Every statement
// is idempotent so the portal can run it unconditionally at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			full_name TEXT NOT NULL DEFAULT '',
			role TEXT NOT NULL CHECK (role IN ('admin', 'employee')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS salary_slips (
			id UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES users(id),
			period TEXT NOT NULL,
			basic DOUBLE PRECISION NOT NULL,
			allowances DOUBLE PRECISION NOT NULL DEFAULT 0,
			deductions DOUBLE PRECISION NOT NULL DEFAULT 0,
			net_pay DOUBLE PRECISION NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			CONSTRAINT salary_slips_employee_period_key UNIQUE (employee_id, period)
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			employee_id UUID NOT NULL REFERENCES users(id),
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL CHECK (status IN ('pending', 'approved', 'rejected')),
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			admin_comment TEXT,
			decided_by UUID,
			decided_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_slips_employee ON salary_slips (employee_id, period)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_employee ON expenses (employee_id, submitted_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_status ON expenses (status) WHERE status = 'pending'`,
	}

	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
