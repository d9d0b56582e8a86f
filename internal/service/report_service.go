package service

import (
	"context"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/repository"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
	"go.opentelemetry.io/otel/codes"
)

// ReportService aggregates read-only dashboard figures
type ReportService interface {
	// Summary returns the admin dashboard aggregates. The expense total
	// deliberately sums every claim regardless of status, matching the
	// portal's "Total Expenses" card.
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}

// reportService implements ReportService
type reportService struct {
	userRepo    repository.UserRepository
	expenseRepo repository.ExpenseRepository
}

// NewReportService creates a new ReportService
func NewReportService(userRepo repository.UserRepository, expenseRepo repository.ExpenseRepository) ReportService {
	return &reportService{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
	}
}

// Summary returns the admin dashboard aggregates
func (s *reportService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.report.summary")
	defer span.End()

	employees, err := s.userRepo.CountByRole(ctx, domain.RoleEmployee)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	pending, err := s.expenseRepo.CountPending(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	total, err := s.expenseRepo.SumAmounts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return &dto.SummaryResponse{
		EmployeeCount:       employees,
		PendingExpenseCount: pending,
		TotalExpenseAmount:  total,
	}, nil
}
