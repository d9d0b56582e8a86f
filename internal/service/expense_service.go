package service

import (
	"context"
	"math"
	"strings"
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

// ExpenseService drives reimbursement claims through the approval workflow
type ExpenseService interface {
	// Submit files a new claim for the calling employee in pending state
	Submit(ctx context.Context, caller *domain.Claims, req *dto.SubmitExpenseRequest) (*domain.Expense, error)
	// Decide applies an admin approve/reject decision to a pending claim.
	// Claims already decided fail with domain.ErrExpenseAlreadyDecided.
	Decide(ctx context.Context, caller *domain.Claims, expenseID string, action domain.DecisionAction, comment string) (*domain.Expense, error)
	// ListPending returns all pending claims, newest first
	ListPending(ctx context.Context) ([]*domain.Expense, error)
	// ListForEmployee returns an employee's full claim history, newest
	// first. Employees may only list their own; admins may list any.
	ListForEmployee(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.Expense, error)
}

// expenseService implements ExpenseService
type expenseService struct {
	expenseRepo repository.ExpenseRepository
	userRepo    repository.UserRepository
	notifier    Notifier
	log         *logger.Logger
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(
	expenseRepo repository.ExpenseRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	log *logger.Logger,
) ExpenseService {
	return &expenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		log:         log,
	}
}

// Submit files a new claim for the calling employee
func (s *expenseService) Submit(ctx context.Context, caller *domain.Claims, req *dto.SubmitExpenseRequest) (*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.expense.submit")
	defer span.End()

	span.SetAttributes(
		attribute.String("employee_id", caller.UserID),
		attribute.String("category", req.Category),
	)

	if strings.TrimSpace(req.Category) == "" {
		span.SetStatus(codes.Error, "missing category")
		return nil, domain.ErrMissingCategory
	}
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		span.SetStatus(codes.Error, "invalid amount")
		return nil, domain.ErrInvalidAmount
	}

	expense := &domain.Expense{
		ID:          uuid.New().String(),
		EmployeeID:  caller.UserID,
		Category:    strings.TrimSpace(req.Category),
		Amount:      req.Amount,
		Description: req.Description,
		Status:      domain.ExpenseStatusPending,
		SubmittedAt: time.Now(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.notifier.ExpenseSubmitted(ctx, caller.Email, expense)

	span.SetAttributes(attribute.String("expense_id", expense.ID))
	span.SetStatus(codes.Ok, "")
	return expense, nil
}

// Decide applies an admin decision to a pending claim
func (s *expenseService) Decide(ctx context.Context, caller *domain.Claims, expenseID string, action domain.DecisionAction, comment string) (*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.expense.decide")
	defer span.End()

	span.SetAttributes(
		attribute.String("admin_id", caller.UserID),
		attribute.String("expense_id", expenseID),
		attribute.String("action", string(action)),
	)

	status, err := action.Status()
	if err != nil {
		span.SetStatus(codes.Error, "invalid decision")
		return nil, err
	}

	decision := repository.Decision{
		Status:    status,
		DecidedBy: caller.UserID,
		DecidedAt: time.Now(),
		Comment:   comment,
	}
	if err := s.expenseRepo.Decide(ctx, expenseID, decision); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if expense == nil {
		span.SetStatus(codes.Error, "expense not found")
		return nil, domain.ErrExpenseNotFound
	}

	s.log.Info("expense decided",
		zap.String("expense_id", expense.ID),
		zap.String("status", expense.Status.String()),
		zap.String("decided_by", caller.UserID),
	)

	if employee, err := s.userRepo.GetByID(ctx, expense.EmployeeID); err == nil && employee != nil {
		s.notifier.ExpenseDecided(ctx, employee.Email, expense)
	}

	span.SetStatus(codes.Ok, "")
	return expense, nil
}

// ListPending returns all pending claims, newest first
func (s *expenseService) ListPending(ctx context.Context) ([]*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.expense.list_pending")
	defer span.End()

	expenses, err := s.expenseRepo.ListPending(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return expenses, nil
}

// ListForEmployee returns an employee's full claim history, newest first
func (s *expenseService) ListForEmployee(ctx context.Context, caller *domain.Claims, employeeID string) ([]*domain.Expense, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.expense.list_for_employee")
	defer span.End()

	span.SetAttributes(
		attribute.String("caller_id", caller.UserID),
		attribute.String("employee_id", employeeID),
	)

	if !caller.CanAccessEmployee(employeeID) {
		span.SetStatus(codes.Error, "forbidden")
		return nil, domain.ErrForbidden
	}

	expenses, err := s.expenseRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return expenses, nil
}
