package events_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tirtha/internal/cache"
	"tirtha/internal/repositories"
	"tirtha/internal/services"
)

var Module = fx.Provide(
	provideEventRepo, provideEventService)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(
	eventRepo repositories.EventRepository,
	destinationRepo repositories.DestinationRepository,
	detailsCache cache.DestinationCache) services.EventServiceInterface {
	return services.NewEventService(eventRepo, destinationRepo, detailsCache)
}
