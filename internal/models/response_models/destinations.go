package response_models

// DestinationPin is the map projection: just enough to place and style a
// marker.
type DestinationPin struct {
	ID         string  `json:"id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Deity      string  `json:"deity"`
	Sampradaya string  `json:"sampradaya"`
	City       string  `json:"city"`
}

type DestinationTranslation struct {
	Language            string `json:"language"`
	Name                string `json:"name"`
	ShortDescription    string `json:"short_description"`
	DetailedDescription string `json:"detailed_description"`
	Location            string `json:"location"`
}

type DestinationImage struct {
	HeroImage        string  `json:"hero_image"`
	ImageDescription *string `json:"image_description"`
}

// DestinationFullDetails is the aggregate the detail screen and bottom
// sheet consume: one fetch, all translations, images and events nested.
type DestinationFullDetails struct {
	DestinationPin
	LiveFeed     string                   `json:"live_feed"`
	Translations []DestinationTranslation `json:"translations"`
	Images       []DestinationImage       `json:"images"`
	Events       []Event                  `json:"events"`
}

type DeityMarker struct {
	Deity     string `json:"deity"`
	MapMarker string `json:"map_marker"`
}
