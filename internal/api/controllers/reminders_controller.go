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

type RemindersController struct {
	reminderService services.ReminderServiceInterface
}

func NewRemindersController(reminderService services.ReminderServiceInterface) *RemindersController {
	return &RemindersController{
		reminderService: reminderService,
	}
}

// requestUserID pulls the authenticated user id set by the JWT middleware.
func requestUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session")
		return uuid.Nil, false
	}
	return id, true
}

// ListReminders godoc
// @Summary List the caller's event reminders
// @Tags Reminders
// @Produce json
// @Param lang query string false "Language code" default(en)
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/reminders [get]
func (r *RemindersController) ListReminders(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	lang := c.DefaultQuery("lang", i18n.English)

	reminders, err := r.reminderService.ListReminders(c.Request.Context(), userID, lang)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reminders, "Reminders fetched successfully")
}

// CreateReminder godoc
// @Summary Opt in to a reminder for an event
// @Tags Reminders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/reminders [post]
func (r *RemindersController) CreateReminder(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := r.reminderService.CreateReminder(c.Request.Context(), userID, req.EventID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reminder created successfully")
}

// DeleteReminder godoc
// @Summary Opt out of a reminder for an event
// @Tags Reminders
// @Produce json
// @Param eventId path string true "Event id"
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /me/reminders/{eventId} [delete]
func (r *RemindersController) DeleteReminder(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid event id")
		return
	}

	if err := r.reminderService.DeleteReminder(c.Request.Context(), userID, eventID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Reminder removed successfully")
}
