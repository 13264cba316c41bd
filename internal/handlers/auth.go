package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/security"
	"cyberstudy/portal/internal/store"
)

const adminDashboardURL = "/admin-dashboard"

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type signInResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ParentName  string `json:"parent_name,omitempty"`
	Role        string `json:"role,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

func (h HandlerSet) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, signInResponse{
			Success: false,
			Message: "Email and password are required",
		})
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same message as a wrong password so account existence
			// cannot be probed.
			c.JSON(http.StatusUnauthorized, signInResponse{
				Success: false,
				Message: "Invalid email or password",
			})
			return
		}
		h.log.Error().Err(err).Msg("sign-in lookup failed")
		c.JSON(http.StatusInternalServerError, signInResponse{
			Success: false,
			Message: "Something went wrong, please try again",
		})
		return
	}

	if !security.VerifyPassword(req.Password, user.PasswordHash, user.Salt) {
		c.JSON(http.StatusUnauthorized, signInResponse{
			Success: false,
			Message: "Invalid email or password",
		})
		return
	}

	token, state, err := h.sessions.Begin(c.Request.Context(), user, req.Remember)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", user.ID).Msg("session begin failed")
		c.JSON(http.StatusInternalServerError, signInResponse{
			Success: false,
			Message: "Something went wrong, please try again",
		})
		return
	}

	h.setSessionCookie(c, token, req.Remember)

	resp := signInResponse{
		Success:    true,
		Message:    "Sign in successful",
		ParentName: user.ParentName,
	}
	// Admins land on the admin dashboard; the redirect decision is made
	// here at sign-in time, not when a page is viewed.
	if state.Role == models.RoleAdmin {
		resp.Role = string(models.RoleAdmin)
		resp.RedirectURL = adminDashboardURL
	}

	h.log.Info().Str("user_id", user.ID).Str("role", string(state.Role)).Msg("user signed in")
	c.JSON(http.StatusOK, resp)
}

func (h HandlerSet) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Session.CookieName)
	if err == nil && token != "" {
		if err := h.sessions.End(c.Request.Context(), token); err != nil {
			h.log.Warn().Err(err).Msg("session end failed")
		}
	}

	h.clearSessionCookie(c)

	// Logout reports success regardless of whether a session existed.
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h HandlerSet) setSessionCookie(c *gin.Context, token string, remember bool) {
	maxAge := 0 // browser-lifetime cookie
	if remember {
		maxAge = int(h.sessions.RememberTTL().Seconds())
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.Session.CookieName,
		token,
		maxAge,
		"/",
		"",
		h.cfg.Environment == "production",
		true,
	)
}

func (h HandlerSet) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.Session.CookieName,
		"",
		-1,
		"/",
		"",
		h.cfg.Environment == "production",
		true,
	)
}
