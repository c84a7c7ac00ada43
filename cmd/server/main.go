package main

import (
	"fmt"
	"log"
	"os"

	"github.com/foodexpiry/backend/config"
	httpDelivery "github.com/foodexpiry/backend/internal/delivery/http"
	"github.com/foodexpiry/backend/internal/infrastructure/catalog"
	"github.com/foodexpiry/backend/internal/infrastructure/inventory"
	"github.com/foodexpiry/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting FoodExpiry Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	recipeCatalog, err := catalog.NewYAMLCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to load recipe catalog: %v", err)
	}
	log.Printf("Recipe catalog: %s (%d recipes)", cfg.Catalog.Path, recipeCatalog.Size())

	inventoryStore := inventory.NewMemoryStore()

	// Initialize usecase layer
	suggestionService := usecase.NewSuggestionService(recipeCatalog, inventoryStore)

	log.Printf("Rate limit: %d req/min per IP (burst %d)", cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(suggestionService, inventoryStore, recipeCatalog)

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
