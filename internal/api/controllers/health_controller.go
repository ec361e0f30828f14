package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"globetrotter/internal/infra"
	"globetrotter/pkg/utils"
)

type HealthController struct {
	db *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Health godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := infra.Ping(ctx, h.db); err != nil {
		zap.L().Warn("health check: database unreachable", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	utils.RespondSuccess(c, gin.H{"status": "ok"}, "Server is running")
}
