package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/repository"
	"github.com/mehraj28/Payroll-Mangement/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceConfig holds configuration for AuthService
type AuthServiceConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
	BcryptCost        int
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Register creates a new user; the role is fixed at creation
	Register(ctx context.Context, req *dto.SignupRequest) (*domain.User, error)
	// Login authenticates by email and password and mints an access token
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	// Resolve validates an access token and returns the caller's identity
	Resolve(ctx context.Context, token string) (*domain.Claims, error)
	// Logout revokes the token server-side; without a revocation store the
	// token is simply discarded by the client and lapses at expiry
	Logout(ctx context.Context, token string) error
	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id string) (*domain.User, error)
	// ListUsers returns the full user directory, oldest first
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// authService implements AuthService
type authService struct {
	userRepo    repository.UserRepository
	revocations repository.RevocationRepository
	config      *AuthServiceConfig

	// dummyHash is compared against when the email is unknown, so a failed
	// login costs one bcrypt comparison either way.
	dummyHash []byte
}

// NewAuthService creates a new AuthService. revocations may be nil, in
// which case logout degrades to client-side token discard.
func NewAuthService(
	userRepo repository.UserRepository,
	revocations repository.RevocationRepository,
	config *AuthServiceConfig,
) AuthService {
	if config.BcryptCost == 0 {
		config.BcryptCost = bcrypt.DefaultCost
	}
	if config.AccessTokenExpiry == 0 {
		config.AccessTokenExpiry = 7 * 24 * time.Hour
	}
	dummyHash, _ := bcrypt.GenerateFromPassword([]byte("payroll-dummy-credential"), config.BcryptCost)
	return &authService{
		userRepo:    userRepo,
		revocations: revocations,
		config:      config,
		dummyHash:   dummyHash,
	}
}

// Register creates a new user
func (s *authService) Register(ctx context.Context, req *dto.SignupRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.register")
	defer span.End()

	span.SetAttributes(attribute.String("email", req.Email))

	role := req.EffectiveRole()
	if !role.Valid() {
		span.SetStatus(codes.Error, "invalid role")
		return nil, domain.ErrInvalidRole
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if exists {
		span.SetStatus(codes.Error, "email already registered")
		return nil, domain.ErrEmailAlreadyRegistered
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.config.BcryptCost)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", user.ID))
	span.SetStatus(codes.Ok, "")
	return user, nil
}

// Login authenticates a user. Unknown emails and wrong passwords fail
// identically so callers cannot probe which addresses are registered.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.login")
	defer span.End()

	span.SetAttributes(attribute.String("email", email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		span.SetStatus(codes.Error, "invalid credentials")
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		span.SetStatus(codes.Error, "invalid credentials")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.mintToken(user)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", user.ID))
	span.SetStatus(codes.Ok, "")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.config.AccessTokenExpiry.Seconds()),
	}, nil
}

// Resolve validates an access token and returns the caller's identity
func (s *authService) Resolve(ctx context.Context, tokenString string) (*domain.Claims, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.resolve")
	defer span.End()

	claims, _, err := s.parseToken(tokenString)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		if revoked {
			span.SetStatus(codes.Error, "token revoked")
			return nil, domain.ErrTokenRevoked
		}
	}

	span.SetAttributes(attribute.String("user_id", claims.UserID))
	span.SetStatus(codes.Ok, "")
	return claims, nil
}

// Logout revokes the presented token until its natural expiry
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.logout")
	defer span.End()

	claims, expiresAt, err := s.parseToken(tokenString)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("user_id", claims.UserID))

	if s.revocations == nil {
		// Client-side discard only; the token lapses at expiry.
		span.SetStatus(codes.Ok, "no revocation store")
		return nil
	}

	if err := s.revocations.Revoke(ctx, claims.TokenID, time.Until(expiresAt)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// GetUser retrieves a user by ID
func (s *authService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.get_user")
	defer span.End()

	span.SetAttributes(attribute.String("user_id", id))

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if user == nil {
		span.SetStatus(codes.Error, "user not found")
		return nil, domain.ErrUserNotFound
	}

	span.SetStatus(codes.Ok, "")
	return user, nil
}

// ListUsers returns the full user directory, oldest first
func (s *authService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.auth.list_users")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	return users, nil
}

// mintToken signs an access token bound to the user's identity and role
func (s *authService) mintToken(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     user.ID,
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"jti":     uuid.New().String(),
		"exp":     now.Add(s.config.AccessTokenExpiry).Unix(),
		"iat":     now.Unix(),
	})
	return token.SignedString([]byte(s.config.JWTSecret))
}

// parseToken verifies the signature and shape of an access token
func (s *authService) parseToken(tokenString string) (*domain.Claims, time.Time, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, time.Time{}, domain.ErrTokenExpired
		}
		return nil, time.Time{}, domain.ErrInvalidToken
	}
	if !token.Valid {
		return nil, time.Time{}, domain.ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, time.Time{}, domain.ErrInvalidToken
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, time.Time{}, domain.ErrInvalidToken
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, time.Time{}, domain.ErrInvalidToken
	}
	roleStr, ok := mapClaims["role"].(string)
	if !ok || !domain.Role(roleStr).Valid() {
		return nil, time.Time{}, domain.ErrInvalidToken
	}
	tokenID, _ := mapClaims["jti"].(string)

	expiresAt := time.Time{}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	return &domain.Claims{
		UserID:  userID,
		Email:   email,
		Role:    domain.Role(roleStr),
		TokenID: tokenID,
	}, expiresAt, nil
}
