package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/services"
	"globetrotter/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GetTrips godoc
// @Summary List the caller's trips
// @Description Paginated, newest first
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(50) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [get]
func (t *TripController) GetTrips(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	page, ok := queryInt(c, "page", 1)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return
	}
	pageSize, ok := queryInt(c, "pageSize", services.DefaultPageSize)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return
	}

	trips, err := t.tripService.GetListOfTripsByUserId(c.Request.Context(), page, pageSize, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trips": trips}, "Trips fetched successfully")
}

// CreateTrip godoc
// @Summary Create a trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 201 {object} utils.APIResponse{data=response_models.CreatedResponse}
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
		return
	}

	id, err := t.tripService.CreateTrip(c.Request.Context(), userId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, response_models.CreatedResponse{ID: id.String()}, "Trip created successfully")
}

// GetTripDetails godoc
// @Summary Get one of the caller's trips
// @Description Includes duration, section count, total budget and the itinerary
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse{data=response_models.TripDetailResponse}
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [get]
func (t *TripController) GetTripDetails(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	trip, err := t.tripService.GetTripDetails(c.Request.Context(), userId, c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip details fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip and its itinerary
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	userId, ok := currentUser(c)
	if !ok {
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), userId, c.Param("tripId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
