package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tirtha/internal/models/request_models"
	"tirtha/internal/services"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

type SavedPlacesController struct {
	savedPlaceService services.SavedPlaceServiceInterface
}

func NewSavedPlacesController(savedPlaceService services.SavedPlaceServiceInterface) *SavedPlacesController {
	return &SavedPlacesController{
		savedPlaceService: savedPlaceService,
	}
}

// ListSavedPlaces godoc
// @Summary List the caller's favorite destinations
// @Tags SavedPlaces
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/saved-places [get]
func (s *SavedPlacesController) ListSavedPlaces(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	lang := c.DefaultQuery("lang", i18n.English)

	places, err := s.savedPlaceService.ListSavedPlaces(c.Request.Context(), userID, lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Saved places fetched successfully")
}

// SavePlace godoc
// @Summary Add a destination to favorites
// @Tags SavedPlaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/saved-places [post]
func (s *SavedPlacesController) SavePlace(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req request_models.SavePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.savedPlaceService.SavePlace(c.Request.Context(), userID, req.DestinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination saved successfully")
}

// RemovePlace godoc
// @Summary Remove a destination from favorites
// @Tags SavedPlaces
// @Produce json
// @Param destinationId path string true "Destination id"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/saved-places/{destinationId} [delete]
func (s *SavedPlacesController) RemovePlace(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	destinationID, err := uuid.Parse(c.Param("destinationId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid destination id")
		return
	}

	if err := s.savedPlaceService.RemovePlace(c.Request.Context(), userID, destinationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Destination removed from favorites")
}
