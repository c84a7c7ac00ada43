package domain

import "time"

// ExpirationStatus buckets an item by how close it is to spoiling
type ExpirationStatus string

const (
	// StatusExpired means the expiration date is in the past
	StatusExpired ExpirationStatus = "expired"

	// StatusExpiringSoon means the item expires within the next few days
	StatusExpiringSoon ExpirationStatus = "expiring-soon"

	// StatusFresh means the item has comfortable shelf life left
	StatusFresh ExpirationStatus = "fresh"
)

// Category groups inventory items for display purposes
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryDairy     Category = "dairy"
	CategoryMeat      Category = "meat"
	CategoryGrains    Category = "grains"
	CategoryBeverages Category = "beverages"
	CategoryPantry    Category = "pantry"
	CategoryOther     Category = "other"
)

// InventoryItem represents a single food item owned by the household
type InventoryItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit"`
	Category       Category  `json:"category"`
	ExpirationDate time.Time `json:"expirationDate"`
}

// Classification is the derived expiration state of an item.
// DaysUntilExpiration is negative for items already expired.
type Classification struct {
	Status              ExpirationStatus `json:"status"`
	DaysUntilExpiration int              `json:"daysUntilExpiration"`
}

// ClassifiedItem is an inventory item annotated with its expiration state.
// It is recomputed on every classification call, never cached or mutated.
type ClassifiedItem struct {
	InventoryItem
	Classification
}

// AddItemRequest is the payload for adding an item to the inventory
type AddItemRequest struct {
	Name           string    `json:"name" binding:"required"`
	Quantity       float64   `json:"quantity"`
	Unit           string    `json:"unit,omitempty"`
	Category       Category  `json:"category,omitempty"`
	ExpirationDate time.Time `json:"expirationDate" binding:"required"`
}
