package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberstudy/portal/internal/store"
)

// RequireAdmin gates admin operations. The role comes from the user store on
// every call, not from the session, so revoking admin takes effect without
// waiting for the session to end.
func RequireAdmin(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, ok := CurrentSession(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
			return
		}

		user, err := users.FindByID(state.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user_not_found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_access_required"})
			return
		}

		c.Next()
	}
}
