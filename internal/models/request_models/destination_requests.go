package request_models

import "github.com/google/uuid"

type DestinationTranslationInput struct {
	Language            string `json:"language" binding:"required"`
	Name                string `json:"name" binding:"required"`
	ShortDescription    string `json:"short_description"`
	DetailedDescription string `json:"detailed_description"`
	Location            string `json:"location"`
}

type DestinationImageInput struct {
	HeroImage        string  `json:"hero_image" binding:"required"`
	ImageDescription *string `json:"image_description"`
}

type CreateDestinationRequest struct {
	Latitude     float64                       `json:"latitude" binding:"required"`
	Longitude    float64                       `json:"longitude" binding:"required"`
	Deity        string                        `json:"deity" binding:"required"`
	Sampradaya   string                        `json:"sampradaya" binding:"required"`
	City         string                        `json:"city" binding:"required"`
	LiveFeed     string                        `json:"live_feed"`
	Translations []DestinationTranslationInput `json:"translations" binding:"required,min=1,dive"`
	Images       []DestinationImageInput       `json:"images" binding:"dive"`
}

type UpdateDestinationRequest struct {
	ID uuid.UUID `json:"-"` // taken from the URL, not the body
	CreateDestinationRequest
}
