package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status      string `json:"status"`
	Store       string `json:"store"`
	Environment string `json:"environment"`
}

func (h HandlerSet) Health(c *gin.Context) {
	storeStatus := "ok"
	if _, err := h.users.LoadAll(); err != nil {
		storeStatus = "error"
		h.log.Error().Err(err).Msg("users file check failed")
	}

	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Store:       storeStatus,
		Environment: h.cfg.Environment,
	})
}
