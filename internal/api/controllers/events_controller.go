package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tirtha/internal/models/request_models"
	"tirtha/internal/services"
	"tirtha/pkg/i18n"
	"tirtha/pkg/schedule"
	"tirtha/pkg/utils"
)

type EventsController struct {
	eventService services.EventServiceInterface
}

func NewEventsController(eventService services.EventServiceInterface) *EventsController {
	return &EventsController{
		eventService: eventService,
	}
}

// GetDestinationEvents godoc
// @Summary List a destination's events for one tab
// @Tags Events
// @Produce json
// @Param id path string true "Destination id"
// @Param tab query string false "daily or upcoming" default(daily)
// @Param lang query string false "Language code" default(en)
// @Success 200 {object} utils.APIResponse
// @Router /destinations/{id}/events [get]
func (e *EventsController) GetDestinationEvents(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	tab := schedule.Tab(c.DefaultQuery("tab", string(schedule.TabDaily)))
	if tab != schedule.TabDaily && tab != schedule.TabUpcoming {
		utils.RespondError(c, http.StatusBadRequest, "tab must be daily or upcoming")
		return
	}
	lang := c.DefaultQuery("lang", i18n.English)

	events, err := e.eventService.GetDestinationEvents(c.Request.Context(), destinationID, tab, lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

// GetDaySchedule godoc
// @Summary Resolve the current and next daily event for a destination
// @Tags Events
// @Produce json
// @Param id path string true "Destination id"
// @Param lang query string false "Language code" default(en)
// @Param at query string false "Reference time, RFC3339; defaults to server time"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/{id}/schedule [get]
func (e *EventsController) GetDaySchedule(c *gin.Context) {
	destinationID := c.Param("id")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}
	lang := c.DefaultQuery("lang", i18n.English)

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "at must be an RFC3339 timestamp")
			return
		}
		at = parsed
	}

	daySchedule, err := e.eventService.GetDaySchedule(c.Request.Context(), destinationID, lang, at)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, daySchedule, "Schedule resolved successfully")
}

// GetPopularEvents godoc
// @Summary List popular darshans across destinations
// @Tags Events
// @Produce json
// @Param deity query string false "Filter by deity"
// @Param sampradaya query string false "Filter by sampradaya"
// @Param city query string false "Filter by city"
// @Param type query string false "daily or special"
// @Param lang query string false "Language code" default(en)
// @Success 200 {object} utils.APIResponse
// @Router /events/popular [get]
func (e *EventsController) GetPopularEvents(c *gin.Context) {
	eventType := c.Query("type")
	if eventType != "" && eventType != "daily" && eventType != "special" {
		utils.RespondError(c, http.StatusBadRequest, "type must be daily or special")
		return
	}

	filters := services.PopularEventFilters{
		Deity:      c.Query("deity"),
		Sampradaya: c.Query("sampradaya"),
		City:       c.Query("city"),
		Type:       eventType,
	}
	lang := c.DefaultQuery("lang", i18n.English)

	events, err := e.eventService.GetPopularEvents(c.Request.Context(), filters, lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Popular events fetched successfully")
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/events [post]
func (e *EventsController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := e.eventService.CreateEvent(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id.String()}, "Event created successfully")
}

// UpdateEvent godoc
// @Summary Update an event and its translations
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/events/{id} [put]
func (e *EventsController) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	req.ID = id

	if err := e.eventService.UpdateEvent(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/events/{id} [delete]
func (e *EventsController) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := e.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
