package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cyberstudy/portal/internal/middleware"
	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/store"
)

type dashboardStats struct {
	TotalStudents     int     `json:"total_students"`
	TotalHours        float64 `json:"total_hours"`
	CompletedProjects int     `json:"completed_projects"`
}

type dashboardResponse struct {
	ParentName string           `json:"parent_name"`
	Email      string           `json:"email"`
	Students   []models.Student `json:"students"`
	Stats      dashboardStats   `json:"stats"`
}

// DashboardData returns the signed-in parent's own record only; the user id
// comes from the session, never from the request.
func (h HandlerSet) DashboardData(c *gin.Context) {
	state, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
		return
	}

	user, err := h.users.FindByID(state.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Account deleted while the session was still live.
			c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
			return
		}
		h.log.Error().Err(err).Str("user_id", state.UserID).Msg("dashboard lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	stats := dashboardStats{TotalStudents: len(user.Students)}
	for _, student := range user.Students {
		if student.Progress == nil {
			continue
		}
		stats.TotalHours += student.Progress.TotalHours
		stats.CompletedProjects += student.Progress.CompletedProjects
	}

	c.JSON(http.StatusOK, dashboardResponse{
		ParentName: user.ParentName,
		Email:      user.Email,
		Students:   user.Students,
		Stats:      stats,
	})
}
