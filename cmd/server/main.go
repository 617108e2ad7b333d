package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fare/internal/app"
	"fare/internal/config"
	"fare/internal/handler"
	internalRedis "fare/internal/redis"
	"fare/internal/repository/postgres"
	"fare/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)

	// Initialize repositories.
	configRepo := postgres.NewPriceConfigRepository(db)
	zonePriceRepo := postgres.NewZonePriceRepository(db)
	zoneRepo := postgres.NewZoneRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	serviceTypeRepo := postgres.NewServiceTypeRepository(db)

	// Initialize services.
	configService := service.NewPriceConfigService(configRepo, cityRepo, serviceTypeRepo, cacheStore, lockStore)
	zonePriceService := service.NewZonePriceService(zonePriceRepo, zoneRepo, configRepo)
	quoteService := service.NewQuoteService(configService, zonePriceRepo, cityRepo, countryRepo)

	// Initialize handlers.
	configHandler := handler.NewPriceConfigHandler(configService)
	zonePriceHandler := handler.NewZonePriceHandler(zonePriceService)
	catalogHandler := handler.NewCatalogHandler(zoneRepo, cityRepo, serviceTypeRepo)
	quoteHandler := handler.NewQuoteHandler(quoteService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		PriceConfigHandler: configHandler,
		ZonePriceHandler:   zonePriceHandler,
		CatalogHandler:     catalogHandler,
		QuoteHandler:       quoteHandler,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
