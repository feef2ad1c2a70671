package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urbanpulse/service-maps/internal/application"
	"github.com/urbanpulse/service-maps/internal/config"
	"github.com/urbanpulse/service-maps/internal/events"
	"github.com/urbanpulse/service-maps/internal/geocode"
	"github.com/urbanpulse/service-maps/internal/handler"
	"github.com/urbanpulse/service-maps/internal/locate"
	"github.com/urbanpulse/service-maps/internal/logger"
	"github.com/urbanpulse/service-maps/internal/middleware"
	"github.com/urbanpulse/service-maps/internal/routing"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-maps")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-maps",
		zap.String("port", cfg.Port),
		zap.String("geocoding_url", cfg.GeocodingURL),
		zap.String("routing_url", cfg.RoutingURL),
	)

	// Initialize event publisher when brokers are configured
	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewPublisher(cfg.KafkaBrokers, log)
		defer func() { _ = publisher.Close() }()
		log.Info("event publishing enabled", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	// Initialize external-service clients
	geocoder := geocode.NewGeocoder(cfg.GeocodingURL, cfg.ClientUserAgent, log)
	router := routing.NewRouter(cfg.RoutingURL, cfg.ClientUserAgent, log)
	locator := locate.NewIPLocator(cfg.GeolocationURL, log)

	// Initialize application services
	plannerService := application.NewPlannerService(geocoder, router, publisher, log)
	mapService := application.NewMapService(plannerService, locator, log)

	// Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(plannerService)
	mapHandler := handler.NewMapHandler(mapService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Apply global middleware
	engine.Use(middleware.RecoveryMiddleware(log))
	engine.Use(middleware.LoggerMiddleware(log))
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.CORSMiddleware())
	engine.Use(middleware.SecurityHeadersMiddleware())

	// Liveness probe
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "service-maps"})
	})

	// Register routes
	routeHandler.RegisterRoutes(&engine.RouterGroup)
	mapHandler.RegisterRoutes(&engine.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-maps...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-maps stopped")
}
