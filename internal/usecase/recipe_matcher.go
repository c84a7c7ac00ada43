package usecase

import (
	"sort"
	"strings"

	"github.com/foodexpiry/backend/internal/domain"
)

// Match scores each catalog recipe by how much of its ingredient list the
// owned inventory covers, excludes recipes with no matching ingredients,
// and returns the rest sorted by descending match score. Inputs are never
// mutated; the result is always a non-nil slice.
func Match(recipes []domain.Recipe, items []domain.InventoryItem) []domain.MatchedRecipe {
	matched := []domain.MatchedRecipe{}
	if len(recipes) == 0 || len(items) == 0 {
		return matched
	}

	for _, recipe := range recipes {
		// A recipe with no ingredients has an undefined score and nothing
		// to match against; excluded rather than risking a divide by zero.
		if len(recipe.Ingredients) == 0 {
			continue
		}

		var matching []string
		for _, ingredient := range recipe.Ingredients {
			for _, item := range items {
				if ingredientMatchesItem(ingredient, item.Name) {
					matching = append(matching, ingredient)
					break
				}
			}
		}
		if len(matching) == 0 {
			continue
		}

		matched = append(matched, domain.MatchedRecipe{
			Recipe:              recipe,
			MatchingIngredients: matching,
			MatchScore:          float64(len(matching)) / float64(len(recipe.Ingredients)),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})

	return matched
}

// ingredientMatchesItem reports whether a free-text ingredient and an owned
// item name refer to the same food. Containment is checked in both
// directions, case-insensitively, so "tomatoes" still matches "diced
// tomato". False positives are an accepted cost of the heuristic.
func ingredientMatchesItem(ingredient, itemName string) bool {
	ing := strings.ToLower(strings.TrimSpace(ingredient))
	name := strings.ToLower(strings.TrimSpace(itemName))
	if ing == "" || name == "" {
		return false
	}
	return strings.Contains(ing, name) || strings.Contains(name, ing)
}
