package service

import (
	"context"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/pkg/logger"
	"go.uber.org/zap"
)

// Notifier delivers workflow notifications to the people involved. The
// current implementation writes structured log records; a mail or chat
// provider can be swapped in behind the same interface.
type Notifier interface {
	// SlipCreated notifies an employee that a salary slip was issued
	SlipCreated(ctx context.Context, employeeEmail string, slip *domain.SalarySlip)
	// ExpenseSubmitted notifies administrators of a new claim
	ExpenseSubmitted(ctx context.Context, employeeEmail string, expense *domain.Expense)
	// ExpenseDecided notifies an employee of a decision on their claim
	ExpenseDecided(ctx context.Context, employeeEmail string, expense *domain.Expense)
}

// logNotifier implements Notifier on top of the application logger
type logNotifier struct {
	log *logger.Logger
}

// NewLogNotifier creates a Notifier that records notifications in the log
func NewLogNotifier(log *logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) SlipCreated(ctx context.Context, employeeEmail string, slip *domain.SalarySlip) {
	n.log.Info("notification: salary slip created",
		zap.String("to", employeeEmail),
		zap.String("slip_id", slip.ID),
		zap.String("period", slip.Period),
		zap.Float64("net_pay", slip.NetPay),
	)
}

func (n *logNotifier) ExpenseSubmitted(ctx context.Context, employeeEmail string, expense *domain.Expense) {
	n.log.Info("notification: expense submitted",
		zap.String("from", employeeEmail),
		zap.String("expense_id", expense.ID),
		zap.String("category", expense.Category),
		zap.Float64("amount", expense.Amount),
	)
}

func (n *logNotifier) ExpenseDecided(ctx context.Context, employeeEmail string, expense *domain.Expense) {
	n.log.Info("notification: expense decided",
		zap.String("to", employeeEmail),
		zap.String("expense_id", expense.ID),
		zap.String("status", expense.Status.String()),
		zap.String("comment", expense.AdminComment),
	)
}
