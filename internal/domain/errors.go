package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrItemNotFound is returned when an inventory item does not exist
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrRecipeNotFound is returned when a recipe is not in the catalog
	ErrRecipeNotFound = errors.New("recipe not found in catalog")

	// ErrCatalogUnavailable is returned when the recipe catalog cannot be read
	ErrCatalogUnavailable = errors.New("recipe catalog unavailable")
)
