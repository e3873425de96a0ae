package response_models

type User struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Role              string  `json:"role"`
	PreferredLanguage string  `json:"preferred_language"`
	Theme             string  `json:"theme"`
	ProfilePhoto      *string `json:"profile_photo"`
}

// ReminderEntry joins a reminder with its event and the destination it
// belongs to, localized for the notifications screen.
type ReminderEntry struct {
	ID              string         `json:"id"`
	Event           LocalizedEvent `json:"event"`
	DestinationID   string         `json:"destination_id"`
	DestinationName string         `json:"destination_name"`
}

// SavedDestination is one favorite row: the pin plus the localized name.
type SavedDestination struct {
	DestinationPin
	Name string `json:"name"`
}
