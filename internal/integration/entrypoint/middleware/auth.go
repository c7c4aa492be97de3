// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hexapixel/backend/internal/application/adapter"
	"github.com/hexapixel/backend/internal/domain/entity"
	domainerror "github.com/hexapixel/backend/internal/domain/error"
	"github.com/hexapixel/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserRoleKey is the context key for the authenticated user's role.
	UserRoleKey ContextKey = "user_role"
	// TokenKey is the context key for the raw bearer token.
	TokenKey ContextKey = "token"
)

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication. Revoked tokens are rejected like expired ones.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.Error(
				"authorization token is required",
				string(domainerror.ErrCodeMissingToken),
			))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.Error(
				"invalid authorization header format",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.Error(
				"authorization token is required",
				string(domainerror.ErrCodeMissingToken),
			))
			c.Abort()
			return
		}

		claims, err := m.tokenService.Validate(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.Error(
				"invalid or expired token",
				string(domainerror.ErrCodeInvalidToken),
			))
			c.Abort()
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserRoleKey), claims.Role)
		c.Set(string(TokenKey), token)

		c.Next()
	}
}

// RequireElevated returns a Gin middleware handler that only lets managers
// and the super admin through. It must run after Authenticate.
func (m *AuthMiddleware) RequireElevated() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok || !role.IsElevated() {
			c.JSON(http.StatusForbidden, dto.Error(
				"not allowed",
				string(domainerror.ErrCodeUserRoleNotAllowed),
			))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserRoleFromContext extracts the user role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (entity.UserRole, bool) {
	role, exists := c.Get(string(UserRoleKey))
	if !exists {
		return "", false
	}
	roleVal, ok := role.(entity.UserRole)
	return roleVal, ok
}

// GetTokenFromContext extracts the raw bearer token from the Gin context.
func GetTokenFromContext(c *gin.Context) (string, bool) {
	token, exists := c.Get(string(TokenKey))
	if !exists {
		return "", false
	}
	tokenStr, ok := token.(string)
	return tokenStr, ok
}
