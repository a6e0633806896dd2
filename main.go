package main

import (
	"time"

	"brand-visibility-service/config"
	"brand-visibility-service/handlers"
	"brand-visibility-service/kgraph"
	"brand-visibility-service/middleware"
	"brand-visibility-service/services"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const (
	EndPointHealth = "/health"
	EndPointSearch = "/search"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.Load()

	if cfg.KGAPIKey == "" {
		log.Fatal("KG_API_KEY environment variable is required")
	}

	log.Info("Starting the brand visibility service...")

	kgClient := kgraph.NewClient(cfg.KGAPIURL, cfg.KGAPIKey, cfg.KGResultLimit,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second)
	classifier := services.NewClassifier(cfg.RecognizedTypes, cfg.AmbiguousTypes)
	scorer := services.NewScorer(cfg.Scoring, cfg.NicheTypes)

	searchHandler := handlers.NewSearchHandler(cfg, kgClient, classifier, scorer)

	router := gin.Default()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())

	// Health check endpoint (no auth required)
	router.GET(EndPointHealth, searchHandler.HealthCheck)

	protected := router.Group("/")
	protected.Use(middleware.Auth(cfg.APIToken))
	protected.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, time.Minute))
	{
		protected.POST(EndPointSearch, searchHandler.Search)
	}

	log.Infof("Brand visibility service starting on %s:%s", cfg.Host, cfg.Port)
	log.Infof("Rate limit: %d requests per minute", cfg.RateLimitPerMinute)
	log.Infof("Allowed origins: %s", cfg.AllowedOrigins)

	if err := router.Run(cfg.Host + ":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
