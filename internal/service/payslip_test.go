package service

import (
	"strings"
	"testing"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

func TestRenderPayslipArtifact(t *testing.T) {
	slip := &domain.SalarySlip{
		ID:         "slip-1",
		EmployeeID: "emp-1",
		Period:     "2024-05",
		Basic:      50000,
		Allowances: 5000,
		Deductions: 2000,
		NetPay:     53000,
		Notes:      "Performance bonus included",
	}
	employee := &domain.User{ID: "emp-1", Email: "jane@example.com", FullName: "Jane Doe"}

	artifact := RenderPayslipArtifact(slip, employee)

	if artifact.Filename != "salary_2024-05.txt" {
		t.Errorf("Filename = %v, want salary_2024-05.txt", artifact.Filename)
	}
	if artifact.ContentType != "text/plain; charset=utf-8" {
		t.Errorf("ContentType = %v, want text/plain; charset=utf-8", artifact.ContentType)
	}

	body := string(artifact.Data)
	for _, want := range []string{
		"Jane Doe",
		"jane@example.com",
		"2024-05",
		"50000.00",
		"53000.00",
		"Performance bonus included",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("artifact body missing %q", want)
		}
	}

	t.Run("falls back to email without a full name", func(t *testing.T) {
		anonymous := &domain.User{ID: "emp-2", Email: "anon@example.com"}
		artifact := RenderPayslipArtifact(slip, anonymous)
		if !strings.Contains(string(artifact.Data), "Employee : anon@example.com") {
			t.Error("artifact body should fall back to the employee email")
		}
	})
}
