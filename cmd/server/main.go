package main

import (
	"fmt"
	"log"
	"os"

	"github.com/saipranav2004/AI-product-analysis/config"
	httpDelivery "github.com/saipranav2004/AI-product-analysis/internal/delivery/http"
	"github.com/saipranav2004/AI-product-analysis/internal/infrastructure/gemini"
	"github.com/saipranav2004/AI-product-analysis/internal/infrastructure/search"
	"github.com/saipranav2004/AI-product-analysis/internal/infrastructure/session"
	"github.com/saipranav2004/AI-product-analysis/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Label Scan Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Initialize infrastructure dependencies
	sessionStore := session.NewMemoryStore(cfg.Session.TTL)

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model)
	if cfg.Server.Environment == "development" {
		geminiClient.SetDebug(true)
		log.Printf("Gemini client debug mode enabled")
	}
	log.Printf("Gemini model: %s", cfg.Gemini.Model)

	searchClient := search.NewClient(cfg.Search.APIKey, cfg.Search.EngineID, cfg.Search.BaseURL)
	if cfg.Search.APIKey == "" {
		log.Printf("WARNING: search API key not configured - recommendations will degrade to defaults")
	}

	// Initialize usecase layer
	recommender := usecase.NewRecommender(searchClient)
	pipeline := usecase.NewPipeline(sessionStore, geminiClient, recommender)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(pipeline, cfg.Server.MaxUploadBytes)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
