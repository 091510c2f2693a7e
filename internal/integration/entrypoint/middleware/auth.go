package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/parsonage/property-ops/internal/application/adapter"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ManagerEmailKey is the context key for the authenticated manager's email.
	ManagerEmailKey ContextKey = "manager_email"
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

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, domainerror.ErrExpiredToken):
				abortUnauthorized(c, "Token has expired", domainerror.ErrCodeExpiredToken)
			case errors.Is(err, domainerror.ErrNotManager):
				c.JSON(http.StatusForbidden, dto.ErrorResponse{
					Error: "Token does not belong to the property manager",
					Code:  string(domainerror.ErrCodeNotManager),
				})
				c.Abort()
			default:
				abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			}
			return
		}

		c.Set(string(ManagerEmailKey), claims.Email)

		c.Next()
	}
}

// GetManagerEmailFromContext extracts the manager email from the Gin context.
func GetManagerEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(ManagerEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}
