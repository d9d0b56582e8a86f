package service

import (
	"fmt"
	"strings"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// PayslipArtifact is the downloadable representation of a salary slip,
// derived deterministically from stored fields. No artifact state is
// persisted; rendering the same slip always yields the same bytes.
type PayslipArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// RenderPayslipArtifact renders a salary slip document for download
func RenderPayslipArtifact(slip *domain.SalarySlip, employee *domain.User) *PayslipArtifact {
	name := employee.FullName
	if name == "" {
		name = employee.Email
	}

	var b strings.Builder
	b.WriteString("ANSHUMAT SOLUTIONS\n")
	b.WriteString("SALARY SLIP\n")
	b.WriteString(strings.Repeat("=", 48) + "\n\n")
	fmt.Fprintf(&b, "Employee : %s\n", name)
	fmt.Fprintf(&b, "Email    : %s\n", employee.Email)
	fmt.Fprintf(&b, "Month    : %s\n\n", slip.Period)
	b.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&b, "%-30s %17s\n", "Component", "Amount")
	b.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&b, "%-30s %17.2f\n", "Basic Salary", slip.Basic)
	fmt.Fprintf(&b, "%-30s %17.2f\n", "Allowances", slip.Allowances)
	fmt.Fprintf(&b, "%-30s %17.2f\n", "Deductions", slip.Deductions)
	b.WriteString(strings.Repeat("-", 48) + "\n")
	fmt.Fprintf(&b, "%-30s %17.2f\n", "Net Pay", slip.NetPay)
	b.WriteString(strings.Repeat("-", 48) + "\n\n")
	if slip.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n\n", slip.Notes)
	}
	b.WriteString("This is a computer-generated document and does not\n")
	b.WriteString("require a physical signature.\n")

	return &PayslipArtifact{
		Filename:    fmt.Sprintf("salary_%s.txt", slip.Period),
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(b.String()),
	}
}
