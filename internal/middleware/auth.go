package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/service"
)

// Context keys set by AuthMiddleware. Handlers must take the caller's
// identity from these, never from the URL or request body.
const (
	ContextAccountID = "account_id"
	ContextUsername  = "username"
)

// AuthMiddleware creates a Gin middleware for JWT authentication. A missing
// or malformed Authorization header is rejected before the token service is
// consulted; an invalid or expired token short-circuits the request.
func AuthMiddleware(tokens *service.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				logger.Debug("Rejected expired token")
			} else {
				logger.Debug("Rejected invalid token", zap.Error(err))
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Set verified identity in context
		c.Set(ContextAccountID, claims.AccountID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}
