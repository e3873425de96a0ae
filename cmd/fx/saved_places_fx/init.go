package saved_places_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tirtha/internal/repositories"
	"tirtha/internal/services"
)

var Module = fx.Provide(
	provideSavedPlaceRepo, provideSavedPlaceService)

func provideSavedPlaceRepo(db *gorm.DB) repositories.SavedPlaceRepository {
	return repositories.NewSavedPlaceRepository(db)
}

func provideSavedPlaceService(
	savedPlaceRepo repositories.SavedPlaceRepository,
	destinationRepo repositories.DestinationRepository) services.SavedPlaceServiceInterface {
	return services.NewSavedPlaceService(savedPlaceRepo, destinationRepo)
}
