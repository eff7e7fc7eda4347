package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/anonymous-sherlock/shopify-api/internal/api"
	"github.com/anonymous-sherlock/shopify-api/internal/api/handlers"
	"github.com/anonymous-sherlock/shopify-api/internal/api/middleware"
	"github.com/anonymous-sherlock/shopify-api/internal/engine/enrichment"
	"github.com/anonymous-sherlock/shopify-api/internal/engine/fulfillment"
	"github.com/anonymous-sherlock/shopify-api/internal/pkg/logger"
	"github.com/anonymous-sherlock/shopify-api/internal/platform/config"
	"github.com/anonymous-sherlock/shopify-api/internal/platform/database"
	"github.com/anonymous-sherlock/shopify-api/internal/platform/repositories"
)

func main() {
	// Local development secrets; harmless to skip in containers where the
	// environment is already populated.
	_ = godotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Logging)

	db, err := database.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := database.NewStore(db)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	orderLogRepo := repositories.NewOrderLogRepository(db)
	webhookLogRepo := repositories.NewWebhookLogRepository(db)

	// Outbound clients
	resolver := enrichment.NewIPInfoClient(cfg.IPInfo.BaseURL, cfg.IPInfo.Token)
	fulfillmentClient := fulfillment.NewClient(cfg.Fulfillment.APIURL, cfg.Fulfillment.APIKey)

	// Handlers
	webhookHandler := handlers.NewWebhookHandler(
		cfg.Shopify.WebhookSecret,
		userRepo,
		orderLogRepo,
		webhookLogRepo,
		resolver,
		fulfillmentClient,
	)
	healthHandler := handlers.NewHealthHandler(store)

	router := api.NewRouter(&api.Dependencies{
		WebhookHandler: webhookHandler,
		HealthHandler:  healthHandler,
		CORS:           middleware.NewCORS(cfg.CORS),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Printf("Server starting on %s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
