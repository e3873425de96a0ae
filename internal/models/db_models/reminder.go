package db_models

import "github.com/google/uuid"

// Reminder is a user's opt-in to be notified about one event. The unique
// pair index keeps duplicate opt-ins out regardless of request ordering.
type Reminder struct {
	BaseModel
	UserID  uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_user_event"`
	EventID uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_user_event"`

	Event *Event `gorm:"foreignKey:EventID"`
}

func (Reminder) TableName() string { return "event_notifications" }
