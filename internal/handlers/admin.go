package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cyberstudy/portal/internal/models"
	"cyberstudy/portal/internal/store"
)

type adminStudent struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Age          int              `json:"age"`
	Grade        string           `json:"grade"`
	Level        string           `json:"level"`
	EnrolledDate string           `json:"enrolled_date"`
	Progress     *models.Progress `json:"progress,omitempty"`
	ParentID     string           `json:"parent_id"`
	ParentName   string           `json:"parent_name"`
	ParentEmail  string           `json:"parent_email"`
}

// AdminListStudents flattens every parent's students into one list with the
// owning parent's identity attached.
func (h HandlerSet) AdminListStudents(c *gin.Context) {
	users, err := h.users.LoadAll()
	if err != nil {
		h.log.Error().Err(err).Msg("list students failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	students := make([]adminStudent, 0)
	for _, user := range users {
		if user.IsAdmin() {
			continue
		}
		for _, student := range user.Students {
			students = append(students, adminStudent{
				ID:           student.ID,
				Name:         student.Name,
				Age:          student.Age,
				Grade:        student.Grade,
				Level:        student.Level,
				EnrolledDate: student.EnrolledDate,
				Progress:     student.Progress,
				ParentID:     user.ID,
				ParentName:   user.ParentName,
				ParentEmail:  user.Email,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}

func (h HandlerSet) AdminUpdateStudentProgress(c *gin.Context) {
	studentID := c.Param("id")

	var patch models.ProgressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid progress data",
		})
		return
	}

	if err := h.users.UpsertStudentProgress(studentID, patch); err != nil {
		if errors.Is(err, store.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Student not found",
			})
			return
		}
		h.log.Error().Err(err).Str("student_id", studentID).Msg("progress update failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update progress",
		})
		return
	}

	h.log.Info().Str("student_id", studentID).Msg("student progress updated")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Progress updated successfully",
	})
}

type adminParent struct {
	ID           string    `json:"id"`
	ParentName   string    `json:"parent_name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	StudentCount int       `json:"student_count"`
}

func (h HandlerSet) AdminListParents(c *gin.Context) {
	users, err := h.users.LoadAll()
	if err != nil {
		h.log.Error().Err(err).Msg("list parents failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_server_error"})
		return
	}

	parents := make([]adminParent, 0)
	for _, user := range users {
		if user.IsAdmin() {
			continue
		}
		parents = append(parents, adminParent{
			ID:           user.ID,
			ParentName:   user.ParentName,
			Email:        user.Email,
			CreatedAt:    user.CreatedAt,
			StudentCount: len(user.Students),
		})
	}

	c.JSON(http.StatusOK, gin.H{"parents": parents})
}

type updateParentRequest struct {
	ParentName *string `json:"parent_name"`
	Email      *string `json:"email"`
}

func (h HandlerSet) AdminUpdateParent(c *gin.Context) {
	parentID := c.Param("id")

	var req updateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.ParentName == nil && req.Email == nil) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Nothing to update",
		})
		return
	}
	if req.Email != nil && *req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email cannot be empty",
		})
		return
	}

	err := h.users.UpdateUserFields(parentID, store.UserFieldsPatch{
		ParentName: req.ParentName,
		Email:      req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Parent not found",
			})
		case errors.Is(err, store.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Email is already in use",
			})
		default:
			h.log.Error().Err(err).Str("parent_id", parentID).Msg("parent update failed")
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to update parent",
			})
		}
		return
	}

	h.log.Info().Str("parent_id", parentID).Msg("parent account updated")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Parent updated successfully",
	})
}

// AdminDeleteParent is idempotent: deleting an unknown id still succeeds and
// leaves the store unchanged.
func (h HandlerSet) AdminDeleteParent(c *gin.Context) {
	parentID := c.Param("id")

	if err := h.users.DeleteUser(parentID); err != nil {
		h.log.Error().Err(err).Str("parent_id", parentID).Msg("parent delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete parent",
		})
		return
	}

	h.log.Info().Str("parent_id", parentID).Msg("parent account deleted")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Parent deleted successfully",
	})
}
