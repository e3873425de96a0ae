package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Event is a darshan or observance at one destination. Daily events recur
// every day at the same clock time and carry no date; one-time events carry
// a concrete date instead. StartTime/EndTime are 24-hour "HH:MM[:SS]"
// strings in local venue time, no timezone attached.
type Event struct {
	BaseModel
	DestinationID uuid.UUID `gorm:"type:uuid;index"`
	StartTime     string    `gorm:"type:varchar(8)"`
	EndTime       string    `gorm:"type:varchar(8)"`
	Daily         bool
	Date          *time.Time `gorm:"type:date"`
	IsPopular     bool
	EventImage    *string

	Translations []EventTranslation `gorm:"foreignKey:EventID"`
	Destination  *Destination       `gorm:"foreignKey:DestinationID"`
}

// StartClock satisfies schedule.Entry.
func (e Event) StartClock() string { return e.StartTime }

// IsDaily satisfies schedule.Entry.
func (e Event) IsDaily() bool { return e.Daily }

// CalendarDate satisfies schedule.Entry.
func (e Event) CalendarDate() *time.Time { return e.Date }

type EventTranslation struct {
	BaseModel
	EventID     uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_event_language"`
	Language    string    `gorm:"type:varchar(8);uniqueIndex:uniq_event_language"`
	Name        string
	Description string `gorm:"type:text"`
}

// Locale satisfies i18n.Entry.
func (t EventTranslation) Locale() string { return t.Language }
