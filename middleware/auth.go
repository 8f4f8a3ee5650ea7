package middleware

import (
	"errors"
	"net/http"
	"strings"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

const (
	UserContextKey  = "userID"
	EmailContextKey = "userEmail"
	NameContextKey  = "userName"
)

// AuthMiddleware extracts the bearer token from the Authorization header and
// verifies it with the identity provider. Protected routes downstream read
// the caller's subject id from the context.
func AuthMiddleware(identity services.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		caller, err := identity.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserContextKey, caller.Subject)
		c.Set(EmailContextKey, caller.Email)
		c.Set(NameContextKey, caller.Name)
		c.Next()
	}
}

// GetUserID returns the authenticated caller's subject id from the context.
func GetUserID(c *gin.Context) (string, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("user ID not found in context")
}
