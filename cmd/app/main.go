package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tirtha/cmd/fx/accounts_fx"
	"tirtha/cmd/fx/cache_fx"
	"tirtha/cmd/fx/controllers_fx"
	"tirtha/cmd/fx/db_fx"
	"tirtha/cmd/fx/destinations_fx"
	"tirtha/cmd/fx/events_fx"
	"tirtha/cmd/fx/reminders_fx"
	"tirtha/cmd/fx/saved_places_fx"
	"tirtha/cmd/fx/workers_fx"
	"tirtha/internal/api/controllers"
	"tirtha/internal/models/db_models"
	"tirtha/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		accounts_fx.Module,
		destinations_fx.Module,
		events_fx.Module,
		reminders_fx.Module,
		saved_places_fx.Module,
		controllers_fx.Module,
		workers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				addr := ":" + os.Getenv("PORT")
				log.Printf("Starting HTTP server at %s", addr)
				if err := engine.Run(addr); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	destinationsController *controllers.DestinationsController,
	eventsController *controllers.EventsController,
	remindersController *controllers.RemindersController,
	savedPlacesController *controllers.SavedPlacesController,
	accountsController *controllers.AccountsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		destinationsController,
		eventsController,
		remindersController,
		savedPlacesController,
		accountsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	destinationsController *controllers.DestinationsController,
	eventsController *controllers.EventsController,
	remindersController *controllers.RemindersController,
	savedPlacesController *controllers.SavedPlacesController,
	accountsController *controllers.AccountsController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountsController.Register)
	accounts.POST("/login", accountsController.Login)

	destinations := r.Group("/destinations")
	destinations.GET("", destinationsController.GetDestinations)
	destinations.GET("/:id/live-feed", destinationsController.GetLiveFeed)
	destinations.GET("/:id/events", eventsController.GetDestinationEvents)
	destinations.GET("/:id/schedule", eventsController.GetDaySchedule)

	r.GET("/deities", destinationsController.GetDeities)
	r.GET("/events/popular", eventsController.GetPopularEvents)

	me := r.Group("/me")
	me.Use(middleware.JWTAuthMiddleware())
	me.GET("", accountsController.GetProfile)
	me.PUT("", accountsController.UpdateProfile)
	me.POST("/requests", accountsController.SubmitRequest)
	me.GET("/reminders", remindersController.ListReminders)
	me.POST("/reminders", remindersController.CreateReminder)
	me.DELETE("/reminders/:eventId", remindersController.DeleteReminder)
	me.GET("/saved-places", savedPlacesController.ListSavedPlaces)
	me.POST("/saved-places", savedPlacesController.SavePlace)
	me.DELETE("/saved-places/:destinationId", savedPlacesController.RemovePlace)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(db_models.RoleAdmin))
	admin.POST("/destinations", destinationsController.CreateDestination)
	admin.PUT("/destinations/:id", destinationsController.UpdateDestination)
	admin.DELETE("/destinations/:id", destinationsController.DeleteDestination)
	admin.POST("/events", eventsController.CreateEvent)
	admin.PUT("/events/:id", eventsController.UpdateEvent)
	admin.DELETE("/events/:id", eventsController.DeleteEvent)
	admin.GET("/users", accountsController.ListUsers)
	admin.PUT("/users/:id", accountsController.UpdateUser)
	admin.DELETE("/users/:id", accountsController.DeleteUser)
	admin.GET("/requests", accountsController.ListRequests)
}
