package reminders_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tirtha/internal/repositories"
	"tirtha/internal/services"
)

var Module = fx.Provide(
	provideReminderRepo, provideReminderService)

func provideReminderRepo(db *gorm.DB) repositories.ReminderRepository {
	return repositories.NewReminderRepository(db)
}

func provideReminderService(
	reminderRepo repositories.ReminderRepository,
	eventRepo repositories.EventRepository) services.ReminderServiceInterface {
	return services.NewReminderService(reminderRepo, eventRepo)
}
