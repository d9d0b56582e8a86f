package repository

import (
	"context"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID; returns nil, nil when absent
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail retrieves a user by email; returns nil, nil when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// List retrieves all users ordered by creation time
	List(ctx context.Context) ([]*domain.User, error)
	// CountByRole counts users holding the given role
	CountByRole(ctx context.Context, role domain.Role) (int64, error)
}
