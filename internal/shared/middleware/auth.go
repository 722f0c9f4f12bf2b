package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"productstore-backend/internal/shared/response"
	"productstore-backend/pkg/jwt"
)

const userIDKey = "userID"

// AuthMiddleware validates the bearer token and stores the authenticated
// user id in the request context.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(c *gin.Context) (int64, error) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, errors.New("user id not found in context")
	}

	userID, ok := v.(int64)
	if !ok {
		return 0, errors.New("invalid user id in context")
	}

	return userID, nil
}
