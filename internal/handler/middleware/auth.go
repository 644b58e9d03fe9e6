package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"jobtrack/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOwnerIDKey = "owner_id"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

// RequireAuth rejects requests without a valid token. Used by operations that
// only make sense for a signed-in owner, like running a migration.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		ownerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxOwnerIDKey, ownerID)
		c.Next()
	}
}

// OptionalAuth resolves the owner identity when a valid token is present and
// continues anonymously otherwise. Anonymous sessions get the device-local
// backend; an invalid token is treated the same as no token.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		ownerID, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		c.Set(ctxOwnerIDKey, ownerID)
		c.Next()
	}
}

// GetOwnerID returns the authenticated owner identity, or "" for an
// anonymous session.
func GetOwnerID(c *gin.Context) string {
	ownerID, exists := c.Get(ctxOwnerIDKey)
	if !exists {
		return ""
	}
	id, ok := ownerID.(string)
	if !ok {
		return ""
	}
	return id
}
