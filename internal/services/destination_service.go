package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tirtha/internal/cache"
	"tirtha/internal/models/db_models"
	"tirtha/internal/models/request_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

type DestinationServiceInterface interface {
	GetPins(ctx context.Context) ([]response_models.DestinationPin, error)
	GetFullDetails(ctx context.Context, ids []string) ([]response_models.DestinationFullDetails, error)
	GetLiveFeed(ctx context.Context, id string) (string, error)
	GetDeityMarkers(ctx context.Context) ([]response_models.DeityMarker, error)

	CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (uuid.UUID, error)
	UpdateDestination(ctx context.Context, request request_models.UpdateDestinationRequest) error
	DeleteDestination(ctx context.Context, id uuid.UUID) error
}

type DestinationService struct {
	destinationRepo repositories.DestinationRepository
	deityRepo       repositories.DeityRepository
	detailsCache    cache.DestinationCache
}

func NewDestinationService(
	destinationRepo repositories.DestinationRepository,
	deityRepo repositories.DeityRepository,
	detailsCache cache.DestinationCache) DestinationServiceInterface {
	return &DestinationService{
		destinationRepo: destinationRepo,
		deityRepo:       deityRepo,
		detailsCache:    detailsCache,
	}
}

func (s *DestinationService) GetPins(ctx context.Context) ([]response_models.DestinationPin, error) {
	destinations, err := s.destinationRepo.ListPins(ctx)
	if err != nil {
		log.Printf("Error listing destinations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	pins := make([]response_models.DestinationPin, 0, len(destinations))
	for _, destination := range destinations {
		pins = append(pins, toPin(destination))
	}
	return pins, nil
}

// GetFullDetails returns the aggregate for each requested destination id,
// serving cached entries where warm and fetching the rest in one query.
func (s *DestinationService) GetFullDetails(ctx context.Context, ids []string) ([]response_models.DestinationFullDetails, error) {

	cached := make(map[string]*response_models.DestinationFullDetails, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if details, ok := s.detailsCache.Get(ctx, id); ok {
			cached[id] = details
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		destinations, err := s.fetchFull(ctx, missing)
		if err != nil {
			log.Printf("Error fetching destination details: %v", err)
			return nil, utils.ErrDatabaseError
		}
		for _, destination := range destinations {
			details := toFullDetails(destination)
			s.detailsCache.Set(ctx, &details)
			cached[details.ID] = &details
		}
	}

	// Preserve request order; ids the database does not know are skipped.
	results := make([]response_models.DestinationFullDetails, 0, len(ids))
	for _, id := range ids {
		if details, ok := cached[id]; ok {
			results = append(results, *details)
		}
	}
	return results, nil
}

// fetchFull loads the aggregates the cache could not serve. A lone id is
// the detail screen's usual case and goes through the keyed lookup instead
// of the IN query.
func (s *DestinationService) fetchFull(ctx context.Context, ids []string) ([]db_models.Destination, error) {
	if len(ids) == 1 {
		destination, err := s.destinationRepo.GetByIDFull(ctx, ids[0])
		if err != nil || destination == nil {
			return nil, err
		}
		return []db_models.Destination{*destination}, nil
	}
	return s.destinationRepo.ListFullByIDs(ctx, ids)
}

func (s *DestinationService) GetLiveFeed(ctx context.Context, id string) (string, error) {
	feed, err := s.destinationRepo.GetLiveFeed(ctx, id)
	if err != nil {
		log.Printf("Error fetching live feed: %v", err)
		return "", utils.ErrDatabaseError
	}
	if feed == nil {
		return "", utils.ErrDestinationNotFound
	}
	return *feed, nil
}

func (s *DestinationService) GetDeityMarkers(ctx context.Context) ([]response_models.DeityMarker, error) {
	markers, err := s.deityRepo.ListMarkers(ctx)
	if err != nil {
		log.Printf("Error listing deity markers: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.DeityMarker, 0, len(markers))
	for _, marker := range markers {
		responses = append(responses, response_models.DeityMarker{
			Deity:     string(marker.Deity),
			MapMarker: marker.MapMarker,
		})
	}
	return responses, nil
}

func (s *DestinationService) CreateDestination(ctx context.Context, request request_models.CreateDestinationRequest) (uuid.UUID, error) {
	destination, err := destinationFromRequest(request)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.destinationRepo.Create(ctx, destination)
	if err != nil {
		log.Printf("Error creating destination: %v", err)
		return uuid.Nil, utils.ErrDatabaseError
	}
	return id, nil
}

func (s *DestinationService) UpdateDestination(ctx context.Context, request request_models.UpdateDestinationRequest) error {
	existing, err := s.destinationRepo.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching destination: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrDestinationNotFound
	}

	destination, err := destinationFromRequest(request.CreateDestinationRequest)
	if err != nil {
		return err
	}
	destination.BaseModel = existing.BaseModel

	if err := s.destinationRepo.Update(ctx, destination); err != nil {
		log.Printf("Error updating destination: %v", err)
		return utils.ErrDatabaseError
	}

	s.detailsCache.Invalidate(ctx, request.ID.String())
	return nil
}

func (s *DestinationService) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	existing, err := s.destinationRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching destination: %v", err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrDestinationNotFound
	}

	if err := s.destinationRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting destination: %v", err)
		return utils.ErrDatabaseError
	}

	s.detailsCache.Invalidate(ctx, id.String())
	return nil
}

func destinationFromRequest(request request_models.CreateDestinationRequest) (*db_models.Destination, error) {
	deity := db_models.Deity(request.Deity)
	sampradaya := db_models.Sampradaya(request.Sampradaya)
	if !deity.Valid() || !sampradaya.Valid() {
		return nil, utils.ErrInvalidEnumValue
	}

	translations := make([]db_models.DestinationTranslation, 0, len(request.Translations))
	seen := make(map[string]bool, len(request.Translations))
	for _, input := range request.Translations {
		if !i18n.Supported(input.Language) || seen[input.Language] {
			return nil, utils.ErrInvalidLanguage
		}
		seen[input.Language] = true
		translations = append(translations, db_models.DestinationTranslation{
			Language:            input.Language,
			Name:                input.Name,
			ShortDescription:    input.ShortDescription,
			DetailedDescription: input.DetailedDescription,
			Location:            input.Location,
		})
	}

	images := make([]db_models.DestinationImage, 0, len(request.Images))
	for position, input := range request.Images {
		images = append(images, db_models.DestinationImage{
			Position:         position,
			HeroImage:        input.HeroImage,
			ImageDescription: input.ImageDescription,
		})
	}

	return &db_models.Destination{
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		Deity:        deity,
		Sampradaya:   sampradaya,
		City:         request.City,
		LiveFeed:     request.LiveFeed,
		Translations: translations,
		Images:       images,
	}, nil
}
