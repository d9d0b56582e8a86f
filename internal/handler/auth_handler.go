package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/dto"
	"github.com/mehraj28/Payroll-Mangement/internal/middleware"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
	"github.com/mehraj28/Payroll-Mangement/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles user registration
// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	if valid, msg := req.ValidateEmail(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}
	if valid, msg := req.ValidateRole(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyRegistered) {
			c.JSON(http.StatusConflict, response.Error("DUPLICATE_IDENTITY", "Email is already registered"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusCreated, response.Success(dto.NewUserResponse(user)))
}

// Login handles user login. The request body is form-encoded with
// OAuth2-style field names; username carries the email.
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.Error("INVALID_CREDENTIALS", "Invalid email or password"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(token))
}

// Me returns the authenticated caller's profile
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("User no longer exists"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(dto.NewUserResponse(user)))
}

// Logout revokes the caller's access token
// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Authorization header required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		if domain.IsUnauthenticatedError(err) {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			return
		}
		c.JSON(http.StatusServiceUnavailable, response.StorageError())
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"message": "Logged out successfully"}))
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
