package controllers_fx

import (
	"go.uber.org/fx"
	"tirtha/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewEventsController),
	fx.Provide(controllers.NewRemindersController),
	fx.Provide(controllers.NewSavedPlacesController),
	fx.Provide(controllers.NewAccountsController))
