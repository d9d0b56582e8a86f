package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mehraj28/Payroll-Mangement/internal/domain"
	"github.com/mehraj28/Payroll-Mangement/internal/service"
	"github.com/mehraj28/Payroll-Mangement/pkg/response"
)

const (
	// UserIDKey is the context key for the authenticated user's ID
	UserIDKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email
	UserEmailKey = "user_email"
	// UserRoleKey is the context key for the authenticated user's role
	UserRoleKey = "user_role"
	// ClaimsKey is the context key for the full token claims
	ClaimsKey = "claims"
)

// RequireAuth validates the bearer token and stores the caller's identity
// in the request context
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := auth.Resolve(c.Request.Context(), parts[1])
		if err != nil {
			// A revocation-store outage must not read as a bad token,
			// clients discard their credentials on 401.
			if domain.IsUnauthenticatedError(err) {
				c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid or expired token"))
			} else {
				c.JSON(http.StatusServiceUnavailable, response.StorageError())
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserRoleKey, string(claims.Role))
		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// RequireRole rejects callers whose role does not match
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, response.Unauthorized("Authentication required"))
			c.Abort()
			return
		}

		if claims.Role != role {
			c.JSON(http.StatusForbidden, response.Forbidden("Insufficient permissions"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetClaims returns the authenticated caller's claims from context
func GetClaims(c *gin.Context) *domain.Claims {
	if v, exists := c.Get(ClaimsKey); exists {
		if claims, ok := v.(*domain.Claims); ok {
			return claims
		}
	}
	return nil
}
