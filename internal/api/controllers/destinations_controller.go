package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tirtha/internal/models/request_models"
	"tirtha/internal/services"
	"tirtha/pkg/utils"
)

type DestinationsController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationsController(destinationService services.DestinationServiceInterface) *DestinationsController {
	return &DestinationsController{
		destinationService: destinationService,
	}
}

// GetDestinations godoc
// @Summary List destinations
// @Description Without ids returns map pins for every destination; with a
// comma-separated ids parameter returns the full aggregate (translations,
// images, events) for those destinations.
// @Tags Destinations
// @Produce json
// @Param ids query string false "Comma-separated destination ids"
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationsController) GetDestinations(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		pins, err := d.destinationService.GetPins(c.Request.Context())
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, pins, "Destinations fetched successfully")
		return
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid destination id: "+id)
			return
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "ids query parameter is required")
		return
	}

	details, err := d.destinationService.GetFullDetails(c.Request.Context(), ids)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, details, "Destination details fetched successfully")
}

// GetLiveFeed godoc
// @Summary Fetch a destination's live video feed URL
// @Tags Destinations
// @Produce json
// @Param id path string true "Destination id"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/{id}/live-feed [get]
func (d *DestinationsController) GetLiveFeed(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	feed, err := d.destinationService.GetLiveFeed(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"live_feed": feed}, "Live feed fetched successfully")
}

// GetDeities godoc
// @Summary List deities with their map marker assets
// @Tags Destinations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /deities [get]
func (d *DestinationsController) GetDeities(c *gin.Context) {
	markers, err := d.destinationService.GetDeityMarkers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, markers, "Deities fetched successfully")
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/destinations [post]
func (d *DestinationsController) CreateDestination(c *gin.Context) {
	var req request_models.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := d.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Destination created successfully")
}

// UpdateDestination godoc
// @Summary Update a destination and its translations/images
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/destinations/{id} [put]
func (d *DestinationsController) UpdateDestination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination id")
		return
	}

	var req request_models.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.ID = id

	if err := d.destinationService.UpdateDestination(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination updated successfully")
}

// DeleteDestination godoc
// @Summary Delete a destination
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/destinations/{id} [delete]
func (d *DestinationsController) DeleteDestination(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination id")
		return
	}

	if err := d.destinationService.DeleteDestination(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination deleted successfully")
}
