package domain

import (
	"time"
)

// SalarySlip represents one payroll cycle for one employee. Slips are
// immutable once created; net pay is computed at creation and stored.
type SalarySlip struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Period     string    `json:"month"` // calendar year-month, "2006-01"
	Basic      float64   `json:"basic"`
	Allowances float64   `json:"allowances"`
	Deductions float64   `json:"deductions"`
	NetPay     float64   `json:"net_pay"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ParsePeriod validates a pay period string. Periods are calendar
// year-months in "YYYY-MM" form, unique per employee.
func ParsePeriod(s string) (string, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return "", ErrInvalidPeriod
	}
	return t.Format("2006-01"), nil
}

// NetPay derives net pay from slip components. Omitted allowances and
// deductions are zero.
func NetPay(basic, allowances, deductions float64) float64 {
	return basic + allowances - deductions
}
