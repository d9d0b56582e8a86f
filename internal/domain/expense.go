package domain

import (
	"time"
)

// ExpenseStatus represents the state of an expense claim
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusRejected ExpenseStatus = "rejected"
)

// String returns the string representation of the status
func (s ExpenseStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
// The state graph is exactly pending→approved and pending→rejected.
func (s ExpenseStatus) IsTerminal() bool {
	return s == ExpenseStatusApproved || s == ExpenseStatusRejected
}

// DecisionAction is an admin action taking an expense out of pending
type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
)

// Status returns the terminal status the action transitions to.
func (a DecisionAction) Status() (ExpenseStatus, error) {
	switch a {
	case DecisionApprove:
		return ExpenseStatusApproved, nil
	case DecisionReject:
		return ExpenseStatusRejected, nil
	}
	return "", ErrInvalidDecision
}

// Expense represents a reimbursement claim submitted by an employee
type Expense struct {
	ID           string        `json:"id"`
	EmployeeID   string        `json:"employee_id"`
	Category     string        `json:"category"`
	Amount       float64       `json:"amount"`
	Description  string        `json:"description,omitempty"`
	Status       ExpenseStatus `json:"status"`
	SubmittedAt  time.Time     `json:"date"`
	AdminComment string        `json:"admin_comment,omitempty"`
	DecidedBy    string        `json:"decided_by,omitempty"`
	DecidedAt    *time.Time    `json:"decided_at,omitempty"`
}
