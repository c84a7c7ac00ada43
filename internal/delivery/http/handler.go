package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodexpiry/backend/internal/domain"
	"github.com/foodexpiry/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	suggestions *usecase.SuggestionService
	inventory   domain.InventoryRepository
	catalog     domain.RecipeCatalog
}

// NewHandler creates a new HTTP handler
func NewHandler(suggestions *usecase.SuggestionService, inventory domain.InventoryRepository, catalog domain.RecipeCatalog) *Handler {
	return &Handler{
		suggestions: suggestions,
		inventory:   inventory,
		catalog:     catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodexpiry-backend",
		"version": "1.0.0",
	})
}

// ListInventory returns all inventory items with their expiration status
func (h *Handler) ListInventory(c *gin.Context) {
	items, err := h.suggestions.ClassifyInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// AddItem adds a new item to the inventory
func (h *Handler) AddItem(c *gin.Context) {
	var req domain.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and expirationDate are required"})
		return
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	item, err := h.inventory.Add(c.Request.Context(), domain.InventoryItem{
		Name:           req.Name,
		Quantity:       req.Quantity,
		Unit:           req.Unit,
		Category:       category,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// RemoveItem deletes an inventory item by ID
func (h *Handler) RemoveItem(c *gin.Context) {
	if err := h.inventory.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExpiringItems returns expired and expiring-soon items, soonest first
func (h *Handler) ExpiringItems(c *gin.Context) {
	items, err := h.suggestions.ExpiringSoon(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ListRecipes returns the full recipe catalog
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// SuggestRecipes returns catalog recipes ranked for the current inventory
func (h *Handler) SuggestRecipes(c *gin.Context) {
	recipes, err := h.suggestions.Suggest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// respondError maps domain sentinel errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCatalogUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
