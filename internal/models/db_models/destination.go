package db_models

import "github.com/google/uuid"

type Destination struct {
	BaseModel
	Latitude   float64
	Longitude  float64
	Deity      Deity      `gorm:"type:varchar(32)"`
	Sampradaya Sampradaya `gorm:"type:varchar(32)"`
	City       string
	LiveFeed   string // video stream URL

	Translations []DestinationTranslation `gorm:"foreignKey:DestinationID"`
	Images       []DestinationImage       `gorm:"foreignKey:DestinationID"`
	Events       []Event                  `gorm:"foreignKey:DestinationID"`
}

type DestinationTranslation struct {
	BaseModel
	DestinationID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uniq_destination_language"`
	Language            string    `gorm:"type:varchar(8);uniqueIndex:uniq_destination_language"`
	Name                string
	ShortDescription    string `gorm:"type:text"`
	DetailedDescription string `gorm:"type:text"`
	Location            string
}

// Locale satisfies i18n.Entry.
func (t DestinationTranslation) Locale() string { return t.Language }

type DestinationImage struct {
	BaseModel
	DestinationID    uuid.UUID `gorm:"type:uuid"`
	Position         int       // display order in the hero carousel
	HeroImage        string
	ImageDescription *string
}
