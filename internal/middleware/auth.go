package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Omaralabdullah051/doctors-portal-server/internal/store"
	"github.com/Omaralabdullah051/doctors-portal-server/internal/utils"
)

// EmailKey is the gin context key carrying the verified email claim.
const EmailKey = "email"

// Authenticate rejects requests without a verified bearer token. A missing
// credential is 401; a token that fails signature or expiry checks is 403.
// On success the email claim is attached to the request context.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin composes after Authenticate. It loads the caller's user
// record and rejects with 403 unless the record carries the admin role.
func RequireAdmin(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden"})
			return
		}
		c.Next()
	}
}
