package domain

import "errors"

// Domain errors
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Identity errors
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUserNotFound           = errors.New("user not found")
	ErrEmployeeNotFound       = errors.New("employee not found")

	// Salary errors
	ErrSlipNotFound  = errors.New("salary slip not found")
	ErrDuplicateSlip = errors.New("salary slip already exists for this period")
	ErrInvalidPeriod = errors.New("pay period must be in YYYY-MM format")

	// Expense errors
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrExpenseAlreadyDecided = errors.New("expense has already been decided")
	ErrInvalidDecision       = errors.New("decision must be 'approve' or 'reject'")
	ErrInvalidAmount         = errors.New("amount must be a finite positive number")
	ErrMissingCategory       = errors.New("category is required")

	// Validation errors
	ErrInvalidRole = errors.New("role must be 'admin' or 'employee'")
)

// IsUnauthenticatedError checks if the error means the caller's token is
// missing, malformed, expired, or revoked
func IsUnauthenticatedError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenRevoked)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrEmployeeNotFound) ||
		errors.Is(err, ErrSlipNotFound) ||
		errors.Is(err, ErrExpenseNotFound)
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return errors.Is(err, ErrDuplicateSlip) ||
		errors.Is(err, ErrEmailAlreadyRegistered) ||
		errors.Is(err, ErrExpenseAlreadyDecided)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidDecision) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrMissingCategory) ||
		errors.Is(err, ErrInvalidRole)
}
