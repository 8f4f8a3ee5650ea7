package controllers

import (
	"net/http"

	"storefront-service/middleware"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// abortServiceError writes a ServiceError as the JSON response.
func abortServiceError(c *gin.Context, err *services.ServiceError) {
	c.JSON(err.StatusCode, gin.H{"error": err.Message})
}

// callerID fetches the authenticated subject id set by the auth middleware,
// aborting with 401 when it is missing.
func callerID(c *gin.Context) (string, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
