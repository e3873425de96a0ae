package accounts_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tirtha/internal/repositories"
	"tirtha/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService,
	provideUserRequestRepo, provideUserRequestService)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}

func provideUserRequestRepo(db *gorm.DB) repositories.UserRequestRepository {
	return repositories.NewUserRequestRepository(db)
}

func provideUserRequestService(requestRepo repositories.UserRequestRepository) services.UserRequestServiceInterface {
	return services.NewUserRequestService(requestRepo)
}
