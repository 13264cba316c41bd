package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cyberstudy/portal/internal/config"
	"cyberstudy/portal/internal/middleware"
	"cyberstudy/portal/internal/session"
	"cyberstudy/portal/internal/store"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	users    *store.UserStore
	sessions *session.Manager
}

func NewHandlerSet(log zerolog.Logger, users *store.UserStore, sessions *session.Manager, cfg *config.AppConfig) HandlerSet {
	return HandlerSet{
		log:      log,
		cfg:      cfg,
		users:    users,
		sessions: sessions,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.POST("/signin", h.SignIn)
	router.POST("/logout", h.Logout)

	protected := router.Group("")
	protected.Use(middleware.Auth(h.cfg, h.sessions))
	protected.GET("/dashboard-data", h.DashboardData)

	admin := router.Group("/admin")
	admin.Use(
		middleware.Auth(h.cfg, h.sessions),
		middleware.RequireAdmin(h.users),
	)
	admin.GET("/students", h.AdminListStudents)
	admin.POST("/students/:id/progress", h.AdminUpdateStudentProgress)
	admin.GET("/parents", h.AdminListParents)
	admin.PUT("/parents/:id", h.AdminUpdateParent)
	admin.DELETE("/parents/:id", h.AdminDeleteParent)
}
