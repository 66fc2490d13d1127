package router

import (
	"github.com/flyaway-travel/flyaway-backend/config"
	"github.com/flyaway-travel/flyaway-backend/handlers"
	"github.com/flyaway-travel/flyaway-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config           *config.Config
	TripHandler      *handlers.TripHandler
	ItineraryHandler *handlers.ItineraryHandler
	HealthHandler    *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes don't require auth
	r.GET("/health", deps.HealthHandler.ReadinessCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API group, Bearer-token authenticated
	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(deps.Config.Server.JwtSecretKey))
	{
		tripRoutes := v1.Group("/trips")
		{
			tripRoutes.POST("", deps.TripHandler.CreateTripHandler)
			tripRoutes.GET("", deps.TripHandler.ListTripsHandler)
			tripRoutes.GET("/:id", deps.TripHandler.GetTripHandler)
			tripRoutes.PUT("/:id", deps.TripHandler.UpdateTripHandler)
			tripRoutes.DELETE("/:id", deps.TripHandler.DeleteTripHandler)

			// Day routes live under their trip
			dayRoutes := tripRoutes.Group("/:id/days")
			{
				dayRoutes.POST("", deps.ItineraryHandler.SaveDayHandler)
				dayRoutes.DELETE("/:dayId", deps.ItineraryHandler.DeleteDayHandler)
			}
		}

		// Activity routes address the day directly; the owning trip is
		// resolved server-side
		activityRoutes := v1.Group("/days/:dayId/activities")
		{
			activityRoutes.POST("", deps.ItineraryHandler.SaveActivityHandler)
			activityRoutes.DELETE("/:activityId", deps.ItineraryHandler.DeleteActivityHandler)
		}
	}

	return r
}
