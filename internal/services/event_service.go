package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"tirtha/internal/cache"
	"tirtha/internal/models/db_models"
	"tirtha/internal/models/request_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/schedule"
	"tirtha/pkg/utils"
)

// PopularEventFilters narrows the cross-destination popular list; empty
// fields match everything. Type is "daily" or "special".
type PopularEventFilters struct {
	Deity      string
	Sampradaya string
	City       string
	Type       string
}

type EventServiceInterface interface {
	GetDestinationEvents(ctx context.Context, destinationID string, tab schedule.Tab, lang string) ([]response_models.LocalizedEvent, error)
	GetDaySchedule(ctx context.Context, destinationID string, lang string, at time.Time) (response_models.DaySchedule, error)
	GetPopularEvents(ctx context.Context, filters PopularEventFilters, lang string) ([]response_models.PopularEvent, error)

	CreateEvent(ctx context.Context, request request_models.CreateEventRequest) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, request request_models.UpdateEventRequest) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type EventService struct {
	eventRepo       repositories.EventRepository
	destinationRepo repositories.DestinationRepository
	detailsCache    cache.DestinationCache
}

func NewEventService(
	eventRepo repositories.EventRepository,
	destinationRepo repositories.DestinationRepository,
	detailsCache cache.DestinationCache) EventServiceInterface {
	return &EventService{
		eventRepo:       eventRepo,
		destinationRepo: destinationRepo,
		detailsCache:    detailsCache,
	}
}

// GetDestinationEvents returns one tab of a destination's events: daily
// events ordered by start time, upcoming events ordered by date with
// undated ones last. Past dated events stay in the upcoming list; the
// client decides how to render them.
func (s *EventService) GetDestinationEvents(ctx context.Context, destinationID string, tab schedule.Tab, lang string) ([]response_models.LocalizedEvent, error) {
	events, err := s.eventRepo.ListByDestination(ctx, destinationID)
	if err != nil {
		log.Printf("Error listing destination events: %v", err)
		return nil, utils.ErrDatabaseError
	}

	filtered := schedule.FilterByTab(events, tab)
	if tab == schedule.TabDaily {
		filtered = schedule.SortByStartTime(filtered)
	} else {
		filtered = schedule.SortByDate(filtered)
	}

	localized := make([]response_models.LocalizedEvent, 0, len(filtered))
	for _, event := range filtered {
		localized = append(localized, toLocalizedEvent(event, lang))
	}
	return localized, nil
}

// GetDaySchedule resolves the bottom-sheet view for a destination: the
// daily event running now and the next one coming up, relative to at.
func (s *EventService) GetDaySchedule(ctx context.Context, destinationID string, lang string, at time.Time) (response_models.DaySchedule, error) {
	events, err := s.eventRepo.ListByDestination(ctx, destinationID)
	if err != nil {
		log.Printf("Error listing destination events: %v", err)
		return response_models.DaySchedule{}, utils.ErrDatabaseError
	}

	daily := schedule.FilterByTab(events, schedule.TabDaily)
	resolved := schedule.ResolveCurrentNext(daily, at)

	var result response_models.DaySchedule
	switch len(resolved) {
	case 2:
		current := toLocalizedEvent(resolved[0], lang)
		next := toLocalizedEvent(resolved[1], lang)
		result.Current = &current
		result.Next = &next
	case 1:
		only := toLocalizedEvent(resolved[0], lang)
		if upcomingToday(resolved[0], at) {
			result.Next = &only
		} else {
			result.Current = &only
		}
	}
	return result, nil
}

// upcomingToday reports whether the event's start, projected onto at's
// date, is still ahead.
func upcomingToday(event db_models.Event, at time.Time) bool {
	clock, err := schedule.ParseTimeOfDay(event.StartTime)
	if err != nil {
		return false
	}
	start := time.Date(at.Year(), at.Month(), at.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, at.Location())
	return !start.Before(at)
}

func (s *EventService) GetPopularEvents(ctx context.Context, filters PopularEventFilters, lang string) ([]response_models.PopularEvent, error) {
	events, err := s.eventRepo.ListPopular(ctx)
	if err != nil {
		log.Printf("Error listing popular events: %v", err)
		return nil, utils.ErrDatabaseError
	}

	popular := make([]response_models.PopularEvent, 0, len(events))
	for _, event := range events {
		if event.Destination == nil {
			continue
		}
		if !matchesPopularFilters(event, filters) {
			continue
		}

		destinationName := i18n.Pick(event.Destination.Translations, lang).Name
		popular = append(popular, response_models.PopularEvent{
			Event:           toLocalizedEvent(event, lang),
			DestinationID:   event.DestinationID.String(),
			DestinationName: destinationName,
			Deity:           string(event.Destination.Deity),
			Sampradaya:      string(event.Destination.Sampradaya),
			City:            event.Destination.City,
		})
	}
	return popular, nil
}

func matchesPopularFilters(event db_models.Event, filters PopularEventFilters) bool {
	destination := event.Destination
	if filters.Deity != "" && string(destination.Deity) != filters.Deity {
		return false
	}
	if filters.Sampradaya != "" && string(destination.Sampradaya) != filters.Sampradaya {
		return false
	}
	if filters.City != "" && destination.City != filters.City {
		return false
	}
	if filters.Type == "daily" && !event.Daily {
		return false
	}
	if filters.Type == "special" && event.Daily {
		return false
	}
	return true
}

func (s *EventService) CreateEvent(ctx context.Context, request request_models.CreateEventRequest) (uuid.UUID, error) {
	destination, err := s.destinationRepo.GetByID(ctx, request.DestinationID.String())
	if err != nil {
		log.Printf("Error fetching destination: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return uuid.Nil, utils.ErrDestinationNotFound
	}

	event, err := eventFromRequest(request)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		log.Printf("Error creating event: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}

	s.detailsCache.Invalidate(ctx, request.DestinationID.String())
	return id, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, request request_models.UpdateEventRequest) error {
	existing, err := s.eventRepo.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching event: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEventNotFound
	}

	event, err := eventFromRequest(request.CreateEventRequest)
	if err != nil {
		return err
	}
	event.BaseModel = existing.BaseModel

	if err := s.eventRepo.Update(ctx, event); err != nil {
		log.Printf("Error updating event: %v", err)
		return utils.ErrDatabaseError
	}

	s.detailsCache.Invalidate(ctx, request.DestinationID.String())
	if existing.DestinationID != request.DestinationID {
		s.detailsCache.Invalidate(ctx, existing.DestinationID.String())
	}
	return nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	existing, err := s.eventRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching event: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrEventNotFound
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting event: %v", err)
		return utils.ErrDatabaseError
	}

	s.detailsCache.Invalidate(ctx, existing.DestinationID.String())
	return nil
}

// eventFromRequest validates the daily/date invariant and both clock
// fields before anything reaches the database; a malformed time would
// otherwise surface later as a silently wrong sort order.
func eventFromRequest(request request_models.CreateEventRequest) (*db_models.Event, error) {
	if _, err := schedule.ParseTimeOfDay(request.StartTime); err != nil {
		return nil, utils.ErrInvalidTimeOfDay
	}
	if _, err := schedule.ParseTimeOfDay(request.EndTime); err != nil {
		return nil, utils.ErrInvalidTimeOfDay
	}

	var date *time.Time
	if request.Daily {
		if request.Date != nil {
			return nil, utils.ErrDailyEventWithDate
		}
	} else {
		if request.Date == nil {
			return nil, utils.ErrDatedEventNoDate
		}
		parsed, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, utils.ErrDatedEventNoDate
		}
		date = &parsed
	}

	translations := make([]db_models.EventTranslation, 0, len(request.Translations))
	seen := make(map[string]bool, len(request.Translations))
	for _, input := range request.Translations {
		if !i18n.Supported(input.Language) || seen[input.Language] {
			return nil, utils.ErrInvalidLanguage
		}
		seen[input.Language] = true
		translations = append(translations, db_models.EventTranslation{
			Language:    input.Language,
			Name:        input.Name,
			Description: input.Description,
		})
	}

	return &db_models.Event{
		DestinationID: request.DestinationID,
		StartTime:     request.StartTime,
		EndTime:       request.EndTime,
		Daily:         request.Daily,
		Date:          date,
		IsPopular:     request.IsPopular,
		EventImage:    request.EventImage,
		Translations:  translations,
	}, nil
}
