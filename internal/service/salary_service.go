package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/repository"
	"github.com/mehraj28/Payroll-Mangement/pkg/logger"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// SalaryService defines salary slip operations
type SalaryService interface {
	// CreateSlip issues a slip for an employee and pay period. At most one
	// slip may exist per (employee, period); duplicates fail with
	// domain.ErrDuplicateSlip.
	CreateSlip(ctx context.Context, req *dto.CreateSlipRequest) (*domain.SalarySlip, error)
	// ListSlips returns an employee's slips ordered by period ascending.
	// Employees may only list their own; admins may list any.
	ListSlips(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.SalarySlip, error)
	// RenderPayslip produces the downloadable artifact for a slip. The
	// artifact is a pure function of the stored slip and employee fields.
	RenderPayslip(ctx context.Context, caller *domain.Claims, slipID string) (*PayslipArtifact, error)
}

// salaryService implements SalaryService
type salaryService struct {
	salaryRepo repository.SalaryRepository
	userRepo   repository.UserRepository
	notifier   Notifier
	log        *logger.Logger
}

// NewSalaryService creates a new SalaryService
func NewSalaryService(
	salaryRepo repository.SalaryRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
) SalaryService {
	return &salaryService{
		salaryRepo: salaryRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		log:        log,
	}
}

// CreateSlip issues a salary slip
func (s *salaryService) CreateSlip(ctx context.Context, req *dto.CreateSlipRequest) (*domain.SalarySlip, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.salary.create_slip")
	defer span.End()

	span.SetAttributes(
		attribute.String("employee_id", req.EmployeeID),
		attribute.String("period", req.Month),
	)

	period, err := domain.ParsePeriod(req.Month)
	if err != nil {
		span.SetStatus(codes.Error, "invalid period")
		return nil, err
	}

	employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if employee == nil || employee.Role != domain.RoleEmployee {
		span.SetStatus(codes.Error, "employee not found")
		return nil, domain.ErrEmployeeNotFound
	}

	netPay := domain.NetPay(req.Basic, req.Allowances, req.Deductions)
	slip := &domain.SalarySlip{
		ID:         uuid.New().String(),
		EmployeeID: employee.ID,
		Period:     period,
		Basic:      req.Basic,
		Allowances: req.Allowances,
		Deductions: req.Deductions,
		NetPay:     netPay,
		Notes:      req.Notes,
		CreatedAt:  time.Now(),
	}

	if err := s.salaryRepo.Create(ctx, slip); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if netPay < 0 {
		// Negative net pay is allowed but flagged for payroll audit.
		s.log.Warn("salary slip issued with negative net pay",
			zap.String("slip_id", slip.ID),
			zap.String("employee_id", employee.ID),
			zap.String("period", slip.Period),
			zap.Float64("net_pay", netPay),
		)
	}

	s.notifier.SlipCreated(ctx, employee.Email, slip)

	span.SetAttributes(attribute.String("slip_id", slip.ID))
	span.SetStatus(codes.Ok, "")
	return slip, nil
}

// ListSlips returns an employee's slips ordered by period ascending
func (s *salaryService) ListSlips(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.SalarySlip, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.salary.list_slips")
	defer span.End()

	span.SetAttributes(
		attribute.String("caller_id", caller.UserID),
		attribute.String("employee_id", employeeID),
	)

	if !caller.CanAccessEmployee(employeeID) {
		span.SetStatus(codes.Error, "forbidden")
		return nil, domain.ErrForbidden
	}

	slips, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return slips, nil
}

// RenderPayslip produces the downloadable artifact for a slip
func (s *salaryService) RenderPayslip(ctx context.Context, caller *domain.Claims, slipID string) (*PayslipArtifact, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.salary.render_payslip")
	defer span.End()

	span.SetAttributes(
		attribute.String("caller_id", caller.UserID),
		attribute.String("slip_id", slipID),
	)

	slip, err := s.salaryRepo.GetByID(ctx, slipID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if slip == nil {
		span.SetStatus(codes.Error, "slip not found")
		return nil, domain.ErrSlipNotFound
	}

	if !caller.CanAccessEmployee(slip.EmployeeID) {
		span.SetStatus(codes.Error, "forbidden")
		return nil, domain.ErrForbidden
	}

	employee, err := s.userRepo.GetByID(ctx, slip.EmployeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if employee == nil {
		span.SetStatus(codes.Error, "employee not found")
		return nil, domain.ErrEmployeeNotFound
	}

	span.SetStatus(codes.Ok, "")
	return RenderPayslipArtifact(slip, employee), nil
}
