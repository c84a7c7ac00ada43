package domain

import "context"

// RecipeCatalog defines the interface for the read-only recipe catalog
type RecipeCatalog interface {
	List(ctx context.Context) ([]Recipe, error)
	GetByID(ctx context.Context, id string) (*Recipe, error)
}

// InventoryRepository defines the interface for the household inventory store
type InventoryRepository interface {
	List(ctx context.Context) ([]InventoryItem, error)
	Get(ctx context.Context, id string) (*InventoryItem, error)
	Add(ctx context.Context, item InventoryItem) (*InventoryItem, error)
	Remove(ctx context.Context, id string) error
}
