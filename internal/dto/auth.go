package dto

import (
	"regexp"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// SignupRequest represents a registration request
type SignupRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"`
}

// ValidateEmail validates email format more strictly than the binding tag
func (r *SignupRequest) ValidateEmail() (bool, string) {
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidateRole checks the role field against the closed role set.
// An empty role defaults to employee.
func (r *SignupRequest) ValidateRole() (bool, string) {
	if r.Role == "" {
		return true, ""
	}
	if !domain.Role(r.Role).Valid() {
		return false, "Role must be 'admin' or 'employee'"
	}
	return true, ""
}

// EffectiveRole returns the requested role, defaulting to employee.
func (r *SignupRequest) EffectiveRole() domain.Role {
	if r.Role == "" {
		return domain.RoleEmployee
	}
	return domain.Role(r.Role)
}

// LoginRequest represents a login request. The login endpoint is
// form-encoded with OAuth2-style field names; username carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse represents a successful login response
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UserResponse represents user data in responses
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// NewUserResponse converts a domain user to its response shape
func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
