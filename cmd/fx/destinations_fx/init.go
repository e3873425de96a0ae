package destinations_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tirtha/internal/cache"
	"tirtha/internal/repositories"
	"tirtha/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDeityRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDeityRepo(db *gorm.DB) repositories.DeityRepository {
	return repositories.NewDeityRepository(db)
}

func provideDestinationService(
	destinationRepo repositories.DestinationRepository,
	deityRepo repositories.DeityRepository,
	detailsCache cache.DestinationCache) services.DestinationServiceInterface {
	return services.NewDestinationService(destinationRepo, deityRepo, detailsCache)
}
