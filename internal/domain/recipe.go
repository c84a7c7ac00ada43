package domain

// Recipe is read-only reference data from the catalog. Ingredients are
// free-text names with no structured quantities.
type Recipe struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Ingredients     []string `json:"ingredients"`
	PreparationTime int      `json:"preparationTime"` // minutes
	Instructions    string   `json:"instructions,omitempty"`
}

// MatchedRecipe is a recipe annotated with how well the owned inventory
// covers its ingredient list. MatchScore is always in [0,1].
type MatchedRecipe struct {
	Recipe
	MatchingIngredients []string `json:"matchingIngredients"`
	MatchScore          float64  `json:"matchScore"`
}

// PrioritizedRecipe is a matched recipe re-ranked toward recipes that
// consume soon-to-spoil ingredients.
type PrioritizedRecipe struct {
	MatchedRecipe
	ExpirationUrgency        int `json:"expirationUrgency"`
	ExpiringIngredientsCount int `json:"expiringIngredientsCount"`
}
