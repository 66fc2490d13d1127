package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/flyaway-travel/flyaway-backend/config"
	"github.com/flyaway-travel/flyaway-backend/db"
	"github.com/flyaway-travel/flyaway-backend/handlers"
	"github.com/flyaway-travel/flyaway-backend/internal/cache"
	"github.com/flyaway-travel/flyaway-backend/internal/store/postgres"
	"github.com/flyaway-travel/flyaway-backend/logger"
	"github.com/flyaway-travel/flyaway-backend/models/trip/service"
	"github.com/flyaway-travel/flyaway-backend/router"
	"github.com/flyaway-travel/flyaway-backend/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := config.InitPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Infow("Connected to database", "url", logger.MaskConnectionString(cfg.Database.URL()))

	// The trip cache is optional; without Redis every read goes to Postgres.
	var tripCache service.TripCache = service.NopTripCache{}
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = config.InitRedis(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			_ = redisClient.Close()
		}()
		tripCache = cache.NewRedisTripCache(redisClient,
			time.Duration(cfg.Redis.TripCacheTTLSeconds)*time.Second)
	}

	tripStore := postgres.NewTripStore(pool)
	dayStore := postgres.NewDayStore(pool)
	activityStore := postgres.NewActivityStore(pool)
	txManager := postgres.NewTxManager(pool)

	tripSvc := service.NewTripManagementService(tripStore, dayStore, activityStore, txManager, tripCache)
	itinerarySvc := service.NewItineraryService(tripStore, dayStore, activityStore, txManager, tripCache)
	healthSvc := services.NewHealthService(pool, redisClient, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:           cfg,
		TripHandler:      handlers.NewTripHandler(tripSvc),
		ItineraryHandler: handlers.NewItineraryHandler(itinerarySvc),
		HealthHandler:    handlers.NewHealthHandler(healthSvc),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
}
