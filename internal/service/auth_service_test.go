package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
)

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	users       map[string]*domain.User
	emailIndex  map[string]*domain.User
	createError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users:      make(map[string]*domain.User),
		emailIndex: make(map[string]*domain.User),
	}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if r.createError != nil {
		return r.createError
	}
	r.users[user.ID] = user
	r.emailIndex[user.Email] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.emailIndex[email], nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, exists := r.emailIndex[email]
	return exists, nil
}

func (r *mockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *mockUserRepository) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *mockUserRepository) add(u *domain.User) {
	r.users[u.ID] = u
	r.emailIndex[u.Email] = u
}

// mockRevocationRepository is a mock implementation of RevocationRepository
type mockRevocationRepository struct {
	revoked map[string]bool
}

func newMockRevocationRepository() *mockRevocationRepository {
	return &mockRevocationRepository{revoked: make(map[string]bool)}
}

func (r *mockRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	r.revoked[tokenID] = true
	return nil
}

func (r *mockRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.revoked[tokenID], nil
}

func newTestAuthService(userRepo *mockUserRepository, revocations *mockRevocationRepository) AuthService {
	config := &AuthServiceConfig{
		JWTSecret:         "test-secret-key",
		AccessTokenExpiry: time.Hour,
		BcryptCost:        bcrypt.MinCost, // Lower cost for faster tests
	}
	if revocations == nil {
		return NewAuthService(userRepo, nil, config)
	}
	return NewAuthService(userRepo, revocations, config)
}

func TestAuthService_Register(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo, nil)

	t.Run("successful registration defaults to employee", func(t *testing.T) {
		req := &dto.SignupRequest{
			FullName: "Test User",
			Email:    "test@example.com",
			Password: "Password1!",
		}

		user, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}

		if user.Email != req.Email {
			t.Errorf("Register() Email = %v, want %v", user.Email, req.Email)
		}
		if user.Role != domain.RoleEmployee {
			t.Errorf("Register() Role = %v, want employee", user.Role)
		}
		if user.PasswordHash == req.Password || user.PasswordHash == "" {
			t.Error("Register() stored an unusable password hash")
		}
	})

	t.Run("admin role is honored", func(t *testing.T) {
		req := &dto.SignupRequest{
			Email:    "admin@example.com",
			Password: "Password1!",
			Role:     "admin",
		}

		user, err := svc.Register(context.Background(), req)
		if err != nil {
			t.Fatalf("Register() error = %v", err)
		}
		if user.Role != domain.RoleAdmin {
			t.Errorf("Register() Role = %v, want admin", user.Role)
		}
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		req := &dto.SignupRequest{
			Email:    "manager@example.com",
			Password: "Password1!",
			Role:     "manager",
		}

		_, err := svc.Register(context.Background(), req)
		if !errors.Is(err, domain.ErrInvalidRole) {
			t.Errorf("Register() error = %v, want %v", err, domain.ErrInvalidRole)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		req := &dto.SignupRequest{
			Email:    "test@example.com", // Same email as first test
			Password: "Password2!",
		}

		_, err := svc.Register(context.Background(), req)
		if !errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			t.Errorf("Register() error = %v, want %v", err, domain.ErrEmailAlreadyRegistered)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo, nil)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	userRepo.add(&domain.User{
		ID:           "user-1",
		Email:        "login@example.com",
		PasswordHash: string(hashedPassword),
		FullName:     "Login Test",
		Role:         domain.RoleEmployee,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	})

	t.Run("successful login", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "login@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if resp.AccessToken == "" {
			t.Error("Login() AccessToken is empty")
		}
		if resp.TokenType != "bearer" {
			t.Errorf("Login() TokenType = %v, want bearer", resp.TokenType)
		}
		if resp.ExpiresIn != 3600 {
			t.Errorf("Login() ExpiresIn = %v, want 3600", resp.ExpiresIn)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "login@example.com", "WrongPassword1!")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email fails identically", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nonexistent@example.com", "Password1!")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want %v", err, domain.ErrInvalidCredentials)
		}
	})
}

func TestAuthService_Resolve(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo, nil)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	userRepo.add(&domain.User{
		ID:           "user-1",
		Email:        "resolve@example.com",
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleAdmin,
	})

	t.Run("resolves a freshly minted token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "resolve@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		claims, err := svc.Resolve(context.Background(), resp.AccessToken)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if claims.UserID != "user-1" {
			t.Errorf("Resolve() UserID = %v, want user-1", claims.UserID)
		}
		if claims.Email != "resolve@example.com" {
			t.Errorf("Resolve() Email = %v, want resolve@example.com", claims.Email)
		}
		if claims.Role != domain.RoleAdmin {
			t.Errorf("Resolve() Role = %v, want admin", claims.Role)
		}
		if claims.TokenID == "" {
			t.Error("Resolve() TokenID is empty")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Resolve(context.Background(), "not-a-token")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Resolve() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		otherRepo := newMockUserRepository()
		otherRepo.add(userRepo.emailIndex["resolve@example.com"])
		other := NewAuthService(otherRepo, nil, &AuthServiceConfig{
			JWTSecret:         "a-different-secret",
			AccessTokenExpiry: time.Hour,
			BcryptCost:        bcrypt.MinCost,
		})
		resp, err := other.Login(context.Background(), "resolve@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		_, err = svc.Resolve(context.Background(), resp.AccessToken)
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Resolve() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewAuthService(userRepo, nil, &AuthServiceConfig{
			JWTSecret:         "test-secret-key",
			AccessTokenExpiry: -time.Minute,
			BcryptCost:        bcrypt.MinCost,
		})
		resp, err := expired.Login(context.Background(), "resolve@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		_, err = svc.Resolve(context.Background(), resp.AccessToken)
		if !errors.Is(err, domain.ErrTokenExpired) {
			t.Errorf("Resolve() error = %v, want %v", err, domain.ErrTokenExpired)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	userRepo := newMockUserRepository()
	revocations := newMockRevocationRepository()
	svc := newTestAuthService(userRepo, revocations)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	userRepo.add(&domain.User{
		ID:           "user-1",
		Email:        "logout@example.com",
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleEmployee,
	})

	t.Run("revoked token no longer resolves", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), "logout@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if _, err := svc.Resolve(context.Background(), resp.AccessToken); err != nil {
			t.Fatalf("Resolve() before logout error = %v", err)
		}

		if err := svc.Logout(context.Background(), resp.AccessToken); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		_, err = svc.Resolve(context.Background(), resp.AccessToken)
		if !errors.Is(err, domain.ErrTokenRevoked) {
			t.Errorf("Resolve() after logout error = %v, want %v", err, domain.ErrTokenRevoked)
		}
	})

	t.Run("logout without a revocation store is a no-op", func(t *testing.T) {
		plain := newTestAuthService(userRepo, nil)
		resp, err := plain.Login(context.Background(), "logout@example.com", "Password1!")
		if err != nil {
			t.Fatalf("Login() error = %v", err)
		}

		if err := plain.Logout(context.Background(), resp.AccessToken); err != nil {
			t.Fatalf("Logout() error = %v", err)
		}

		// Token still resolves; the client simply discards it.
		if _, err := plain.Resolve(context.Background(), resp.AccessToken); err != nil {
			t.Errorf("Resolve() error = %v", err)
		}
	})

	t.Run("logout with a garbage token", func(t *testing.T) {
		err := svc.Logout(context.Background(), "not-a-token")
		if !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Logout() error = %v, want %v", err, domain.ErrInvalidToken)
		}
	})
}

func TestAuthService_GetUser(t *testing.T) {
	userRepo := newMockUserRepository()
	svc := newTestAuthService(userRepo, nil)

	userRepo.add(&domain.User{ID: "user-1", Email: "get@example.com", Role: domain.RoleEmployee})

	t.Run("existing user", func(t *testing.T) {
		user, err := svc.GetUser(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("GetUser() error = %v", err)
		}
		if user.Email != "get@example.com" {
			t.Errorf("GetUser() Email = %v, want get@example.com", user.Email)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.GetUser(context.Background(), "no-such-user")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("GetUser() error = %v, want %v", err, domain.ErrUserNotFound)
		}
	})
}
