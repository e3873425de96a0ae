package response_models

type EventTranslation struct {
	Language    string `json:"language"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Event struct {
	ID           string             `json:"id"`
	StartTime    string             `json:"start_time"`
	EndTime      string             `json:"end_time"`
	Daily        bool               `json:"daily"`
	Date         *string            `json:"date"`
	IsPopular    bool               `json:"is_popular"`
	EventImage   *string            `json:"event_image"`
	Translations []EventTranslation `json:"translations"`
}

// LocalizedEvent carries a single resolved translation instead of the full
// translation list, for listings rendered in one language.
type LocalizedEvent struct {
	ID          string  `json:"id"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Daily       bool    `json:"daily"`
	Date        *string `json:"date"`
	EventImage  *string `json:"event_image"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

// DaySchedule is the bottom-sheet view: the event happening now and the
// one coming up next, current first.
type DaySchedule struct {
	Current *LocalizedEvent `json:"current"`
	Next    *LocalizedEvent `json:"next"`
}

// PopularEvent is one row of the cross-destination popular darshan list.
type PopularEvent struct {
	Event           LocalizedEvent `json:"event"`
	DestinationID   string         `json:"destination_id"`
	DestinationName string         `json:"destination_name"`
	Deity           string         `json:"deity"`
	Sampradaya      string         `json:"sampradaya"`
	City            string         `json:"city"`
}
