package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"tirtha/internal/models/db_models"
	"tirtha/internal/models/response_models"
	"tirtha/internal/repositories"
	"tirtha/pkg/i18n"
	"tirtha/pkg/utils"
)

type SavedPlaceServiceInterface interface {
	SavePlace(ctx context.Context, userID, destinationID uuid.UUID) error
	RemovePlace(ctx context.Context, userID, destinationID uuid.UUID) error
	ListSavedPlaces(ctx context.Context, userID uuid.UUID, lang string) ([]response_models.SavedDestination, error)
}

type SavedPlaceService struct {
	savedPlaceRepo  repositories.SavedPlaceRepository
	destinationRepo repositories.DestinationRepository
}

func NewSavedPlaceService(
	savedPlaceRepo repositories.SavedPlaceRepository,
	destinationRepo repositories.DestinationRepository) SavedPlaceServiceInterface {
	return &SavedPlaceService{
		savedPlaceRepo:  savedPlaceRepo,
		destinationRepo: destinationRepo,
	}
}

func (s *SavedPlaceService) SavePlace(ctx context.Context, userID, destinationID uuid.UUID) error {
	destination, err := s.destinationRepo.GetByID(ctx, destinationID.String())
	if err != nil {
		log.Printf("Error fetching destination: %v", err)
		return utils.ErrDatabaseError
	}
	if destination == nil {
		return utils.ErrDestinationNotFound
	}

	place := &db_models.SavedPlace{
		UserID:        userID,
		DestinationID: destinationID,
	}
	if err := s.savedPlaceRepo.Create(ctx, place); err != nil {
		log.Printf("Error saving place: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SavedPlaceService) RemovePlace(ctx context.Context, userID, destinationID uuid.UUID) error {
	if err := s.savedPlaceRepo.Delete(ctx, userID, destinationID); err != nil {
		log.Printf("Error removing saved place: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *SavedPlaceService) ListSavedPlaces(ctx context.Context, userID uuid.UUID, lang string) ([]response_models.SavedDestination, error) {
	places, err := s.savedPlaceRepo.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("Error listing saved places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	saved := make([]response_models.SavedDestination, 0, len(places))
	for _, place := range places {
		if place.Destination == nil {
			continue
		}
		saved = append(saved, response_models.SavedDestination{
			DestinationPin: toPin(*place.Destination),
			Name:           i18n.Pick(place.Destination.Translations, lang).Name,
		})
	}
	return saved, nil
}
