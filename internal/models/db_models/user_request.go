package db_models

import "github.com/google/uuid"

// UserRequest is a free-form request submitted from the profile screen,
// e.g. asking for a temple to be added.
type UserRequest struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;not null"`
	Request string    `gorm:"type:text;not null"`
}
