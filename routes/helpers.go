package routes

import (
	"tasks-pro/taskspro/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requesterFromContext rebuilds the authenticated caller from the values
// stored by the auth middleware.
func requesterFromContext(c *gin.Context) (models.User, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		return models.User{}, false
	}
	userID, ok := userIDInterface.(uuid.UUID)
	if !ok {
		return models.User{}, false
	}

	requester := models.User{ID: userID}
	if email, exists := c.Get("email"); exists {
		requester.Email, _ = email.(string)
	}
	if role, exists := c.Get("role"); exists {
		requester.Role, _ = role.(models.Role)
	}

	return requester, true
}
