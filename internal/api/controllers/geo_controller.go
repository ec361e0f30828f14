package controllers

import (
	"github.com/gin-gonic/gin"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type GeoController struct {
	geoService services.GeoServiceInterface
}

func NewGeoController(geoService services.GeoServiceInterface) *GeoController {
	return &GeoController{
		geoService: geoService,
	}
}

// GetStates godoc
// @Summary List Indian states and union territories
// @Tags Reference
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /states [get]
func (g *GeoController) GetStates(c *gin.Context) {
	states, err := g.geoService.ListStates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"states": states}, "States fetched successfully")
}

// GetCitiesByState godoc
// @Summary List the cities of a state
// @Description An unknown state returns an empty list
// @Tags Reference
// @Produce json
// @Param state path string true "State name"
// @Success 200 {object} utils.APIResponse
// @Router /cities/{state} [get]
func (g *GeoController) GetCitiesByState(c *gin.Context) {
	cities, err := g.geoService.ListCitiesByState(c.Request.Context(), c.Param("state"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"cities": cities}, "Cities fetched successfully")
}
