package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberstudy/portal/internal/config"
	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/session"
)

const sessionContextKey = "current_session"

// Auth resolves the session cookie against the session store and puts the
// session state on the request context. Requests with no cookie, an unknown
// token or an expired session are rejected with 401.
func Auth(cfg *config.AppConfig, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cfg.Session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
			return
		}

		state, err := sessions.Current(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
			return
		}

		c.Set(sessionContextKey, state)
		c.Next()
	}
}

// CurrentSession returns the session state set by Auth.
func CurrentSession(c *gin.Context) (models.SessionState, bool) {
	val, exists := c.Get(sessionContextKey)
	if !exists {
		return models.SessionState{}, false
	}
	state, ok := val.(models.SessionState)
	return state, ok
}
