package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetSections godoc
// @Summary List a trip's itinerary sections
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/sections [get]
func (i *ItineraryController) GetSections(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	sections, err := i.itineraryService.GetSections(c.Request.Context(), userId, c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"sections": sections}, "Sections fetched successfully")
}

// SaveSections godoc
// @Summary Replace a trip's itinerary
// @Description Every existing section is removed and the given list stored in one transaction
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.SaveSectionsRequest true "Sections"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/sections [post]
func (i *ItineraryController) SaveSections(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.SaveSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	sections, err := i.itineraryService.SaveSections(c.Request.Context(), userId, c.Param("tripId"), req.Sections)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"sections": sections}, "Itinerary sections saved successfully")
}
