package request_models

import "github.com/google/uuid"

type UpdateProfileRequest struct {
	PreferredLanguage *string `json:"preferred_language"`
	Theme             *string `json:"theme"`
	ProfilePhoto      *string `json:"profile_photo"`
}

type AdminUpdateUserRequest struct {
	Role              *string `json:"role"`
	PreferredLanguage *string `json:"preferred_language"`
	Theme             *string `json:"theme"`
}

type CreateReminderRequest struct {
	EventID uuid.UUID `json:"event_id" binding:"required"`
}

type SavePlaceRequest struct {
	DestinationID uuid.UUID `json:"destination_id" binding:"required"`
}

type SubmitUserRequest struct {
	Request string `json:"request" binding:"required,min=3"`
}
