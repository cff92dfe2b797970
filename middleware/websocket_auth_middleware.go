package middleware

import (
	"net/http"

	"tasks-pro/taskspro/services"
	"tasks-pro/taskspro/utils/token"

	"github.com/gin-gonic/gin"
)

// WebSocketAuthMiddleware authenticates WebSocket upgrades. Browsers cannot
// set headers on WebSocket requests, so the token is also accepted as a
// query parameter.
func WebSocketAuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}
