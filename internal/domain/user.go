package domain

import (
	"time"
)

// Role represents user role
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Valid reports whether the role is one of the two known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

// User represents a portal user (administrator or employee)
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims represents the identity resolved from an access token
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	TokenID string `json:"jti"`
}

// IsAdmin reports whether the resolved identity carries the admin role.
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanAccessEmployee reports whether the caller may read records owned by
// employeeID. Admins read anything; employees only their own records.
func (c *Claims) CanAccessEmployee(employeeID string) bool {
	switch c.Role {
	case RoleAdmin:
		return true
	case RoleEmployee:
		return c.UserID == employeeID
	}
	return false
}
