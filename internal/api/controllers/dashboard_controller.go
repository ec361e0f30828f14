package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get dashboard report
// @Description Totals of accounts, trips, sections and planned budget plus the most planned destinations
// @Tags Admin
// @Produce json
// @Param last_days query int false "Lookback for new accounts and destinations" default(30) minimum(1) maximum(365)
// @Param top query int false "Number of destinations" default(5) minimum(1) maximum(20)
// @Success 200 {object} utils.APIResponse{data=response_models.DashboardReport}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/dashboard [get]
func (p *DashboardController) GetDashboard(c *gin.Context) {
	lastDays, ok := queryInt(c, "last_days", services.DefaultDashboardDays)
	if !ok || lastDays < 1 || lastDays > services.MaxDashboardDays {
		utils.RespondError(c, http.StatusBadRequest, "last_days must be between 1 and 365")
		return
	}
	top, ok := queryInt(c, "top", services.DefaultTopN)
	if !ok || top < 1 || top > services.MaxTopN {
		utils.RespondError(c, http.StatusBadRequest, "top must be between 1 and 20")
		return
	}

	report, err := p.dashboardService.BuildDashboard(c.Request.Context(), lastDays, top)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}
