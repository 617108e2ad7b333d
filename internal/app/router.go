package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"fare/internal/handler"
	"fare/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PriceConfigHandler *handler.PriceConfigHandler
	ZonePriceHandler   *handler.ZonePriceHandler
	CatalogHandler     *handler.CatalogHandler
	QuoteHandler       *handler.QuoteHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Price configuration routes.
		configs := v1.Group("/price-configurations")
		{
			configs.POST("", deps.PriceConfigHandler.Create)
			configs.GET("", deps.PriceConfigHandler.GetAll)
			configs.GET("/:id", deps.PriceConfigHandler.Get)
			configs.PUT("/:id", deps.PriceConfigHandler.Update)
			configs.POST("/:id/deactivate", deps.PriceConfigHandler.Deactivate)
		}

		// Zone price routes.
		zonePrices := v1.Group("/zone-prices")
		{
			zonePrices.POST("", deps.ZonePriceHandler.Create)
			zonePrices.GET("", deps.ZonePriceHandler.ListByConfig)
			zonePrices.GET("/:id", deps.ZonePriceHandler.Get)
			zonePrices.DELETE("/:id", deps.ZonePriceHandler.Delete)
		}

		// Catalog routes.
		v1.GET("/zones", deps.CatalogHandler.ListZones)
		v1.GET("/cities", deps.CatalogHandler.ListCities)
		v1.GET("/service-types", deps.CatalogHandler.ListServiceTypes)

		// Quote routes.
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", deps.QuoteHandler.Quote)
			quotes.POST("/cancellation", deps.QuoteHandler.CancellationQuote)
		}
	}

	return router
}
