package httpHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"booking-server/auth"
	"booking-server/entities"
	"booking-server/repositories"
)

const currentUserKey = "currentUser"

// RequireAuth validates the bearer token and loads the caller's user
// record. The role used for authorization is the stored one, not the token
// claim, so role changes take effect on the next request.
func RequireAuth(tokens *auth.TokenService, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.GetByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin rejects callers whose stored role is not admin. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - Admin only"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller set by RequireAuth.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entities.User)
	return user
}
