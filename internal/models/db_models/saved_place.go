package db_models

import "github.com/google/uuid"

// SavedPlace is a favorite: plain membership of a destination in a user's
// saved list, toggled on and off by the client.
type SavedPlace struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_user_destination"`
	DestinationID uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_user_destination"`

	Destination *Destination `gorm:"foreignKey:DestinationID"`
}
