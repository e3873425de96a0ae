package request_models

import "github.com/google/uuid"

type EventTranslationInput struct {
	Language    string `json:"language" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateEventRequest struct {
	DestinationID uuid.UUID               `json:"destination_id" binding:"required"`
	StartTime     string                  `json:"start_time" binding:"required"`
	EndTime       string                  `json:"end_time" binding:"required"`
	Daily         bool                    `json:"daily"`
	Date          *string                 `json:"date"` // "2006-01-02", required when daily is false
	IsPopular     bool                    `json:"is_popular"`
	EventImage    *string                 `json:"event_image"`
	Translations  []EventTranslationInput `json:"translations" binding:"required,min=1,dive"`
}

type UpdateEventRequest struct {
	ID uuid.UUID `json:"-"` // taken from the URL, not the body
	CreateEventRequest
}
