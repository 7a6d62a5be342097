package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princebakery/pos-api/internal/presentation/http/dto/response"
	"github.com/princebakery/pos-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("user_mobile", claims.Mobile)
		c.Set("user_staff", claims.Staff)

		c.Next()
	}
}

// RequireStaff restricts a route to staff accounts. Menu management and
// order workflow updates go through here; ordering itself does not.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, exists := c.Get("user_staff")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}
		isStaff, ok := staff.(bool)
		if !ok || !isStaff {
			response.Forbidden(c, "Staff access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
