package dto

import (
	"testing"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

func TestSignupRequest_ValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "valid email", email: "user@example.com", want: true},
		{name: "valid with plus tag", email: "user+payroll@example.com", want: true},
		{name: "valid subdomain", email: "user@mail.example.co.uk", want: true},
		{name: "missing at sign", email: "userexample.com", want: false},
		{name: "missing domain", email: "user@", want: false},
		{name: "missing tld", email: "user@example", want: false},
		{name: "spaces", email: "user name@example.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SignupRequest{Email: tt.email}
			got, _ := req.ValidateEmail()
			if got != tt.want {
				t.Errorf("ValidateEmail() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignupRequest_ValidateRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want bool
	}{
		{name: "admin", role: "admin", want: true},
		{name: "employee", role: "employee", want: true},
		{name: "empty defaults to employee", role: "", want: true},
		{name: "unknown role", role: "manager", want: false},
		{name: "case sensitive", role: "Admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &SignupRequest{Role: tt.role}
			got, _ := req.ValidateRole()
			if got != tt.want {
				t.Errorf("ValidateRole() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignupRequest_EffectiveRole(t *testing.T) {
	if got := (&SignupRequest{}).EffectiveRole(); got != domain.RoleEmployee {
		t.Errorf("EffectiveRole() = %v, want employee", got)
	}
	if got := (&SignupRequest{Role: "admin"}).EffectiveRole(); got != domain.RoleAdmin {
		t.Errorf("EffectiveRole() = %v, want admin", got)
	}
}
