package routes

import (
	"github.com/gin-gonic/gin"

	"tasks-pro/taskspro/middleware"
	"tasks-pro/taskspro/services"
)

// RegisterWebSocketRoutes sets up the WebSocket endpoint with authentication
func RegisterWebSocketRoutes(router *gin.Engine, authService services.AuthServiceInterface, wsService services.WebSocketServiceInterface) {
	wsGroup := router.Group("/api/v1/ws")
	wsGroup.Use(middleware.WebSocketAuthMiddleware(authService))
	{
		wsGroup.GET("", func(c *gin.Context) {
			wsService.HandleConnection(c)
		})
	}
}
