package main

import (
	"context"
	"log"
	"time"

	"golang-storefront-backend/configs"
	"golang-storefront-backend/internal/handlers"
	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/services"
	"golang-storefront-backend/pkg/backend"
	"golang-storefront-backend/pkg/cache"
	"golang-storefront-backend/pkg/messaging"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Store backend client
	backendClient := backend.NewClient(config.Backend.BaseURL)

	// Initialize Redis cache; the catalog cache is an optimization, so a
	// missing Redis is not fatal.
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Println("Continuing without Redis catalog cache")
	} else {
		defer redisCache.Close()
	}

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize services
	catalogService := services.NewCatalogService(backendClient, redisCache, kafkaProducer, config.Kafka.Brokers)
	cartService := services.NewCartService()
	checkoutService := services.NewCheckoutService(cartService, backendClient, kafkaProducer, config.Kafka.Brokers)

	// Initial catalog load: fetch, seed if empty, re-fetch. A failed load
	// leaves the catalog empty; POST /catalog/reload retries it.
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := catalogService.Load(loadCtx); err != nil {
		log.Printf("Initial catalog load failed: %v", err)
	}
	cancel()

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartHandler := handlers.NewCartHandler(cartService, catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	// Initialize Gin router
	router := gin.New()
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-storefront-backend",
		})
	})

	// API routes; every cart operation runs inside a session
	api := router.Group("/api/v1")
	api.Use(middleware.SessionMiddleware())

	catalogHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	checkoutHandler.RegisterRoutes(api)

	log.Printf("🚀 Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}
