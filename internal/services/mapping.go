package services

import (
	"tirtha/internal/models/db_models"
	"tirtha/internal/models/response_models"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

func toPin(destination db_models.Destination) response_models.DestinationPin {
	return response_models.DestinationPin{
		ID:         destination.ID.String(),
		Latitude:   destination.Latitude,
		Longitude:  destination.Longitude,
		Deity:      string(destination.Deity),
		Sampradaya: string(destination.Sampradaya),
		City:       destination.City,
	}
}

func toFullDetails(destination db_models.Destination) response_models.DestinationFullDetails {
	details := response_models.DestinationFullDetails{
		DestinationPin: toPin(destination),
		LiveFeed:       destination.LiveFeed,
		Translations:   make([]response_models.DestinationTranslation, 0, len(destination.Translations)),
		Images:         make([]response_models.DestinationImage, 0, len(destination.Images)),
		Events:         make([]response_models.Event, 0, len(destination.Events)),
	}

	for _, translation := range destination.Translations {
		details.Translations = append(details.Translations, response_models.DestinationTranslation{
			Language:            translation.Language,
			Name:                translation.Name,
			ShortDescription:    translation.ShortDescription,
			DetailedDescription: translation.DetailedDescription,
			Location:            translation.Location,
		})
	}
	for _, image := range destination.Images {
		details.Images = append(details.Images, response_models.DestinationImage{
			HeroImage:        image.HeroImage,
			ImageDescription: image.ImageDescription,
		})
	}
	for _, event := range destination.Events {
		details.Events = append(details.Events, toEvent(event))
	}

	return details
}

func toEvent(event db_models.Event) response_models.Event {
	translations := make([]response_models.EventTranslation, 0, len(event.Translations))
	for _, translation := range event.Translations {
		translations = append(translations, response_models.EventTranslation{
			Language:    translation.Language,
			Name:        translation.Name,
			Description: translation.Description,
		})
	}

	return response_models.Event{
		ID:           event.ID.String(),
		StartTime:    event.StartTime,
		EndTime:      event.EndTime,
		Daily:        event.Daily,
		Date:         formatEventDate(event),
		IsPopular:    event.IsPopular,
		EventImage:   event.EventImage,
		Translations: translations,
	}
}

func toLocalizedEvent(event db_models.Event, lang string) response_models.LocalizedEvent {
	translation := i18n.Pick(event.Translations, lang)

	return response_models.LocalizedEvent{
		ID:          event.ID.String(),
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Daily:       event.Daily,
		Date:        formatEventDate(event),
		EventImage:  event.EventImage,
		Name:        translation.Name,
		Description: translation.Description,
	}
}

func formatEventDate(event db_models.Event) *string {
	if event.Date == nil {
		return nil
	}
	formatted := utils.FormatDate(*event.Date)
	return &formatted
}
