package usecase

import (
	"sort"
	"strings"

	"github.com/foodexpiry/backend/internal/domain"
)

// Urgency weights. An expired ingredient always outranks an expiring one;
// within the expiring window the contribution decays by one step per
// remaining day, so day 0 contributes 80 and day 3 contributes 20.
const (
	expiredUrgencyWeight = 100
	expiringUrgencyStep  = 20
	urgencyWindowDays    = 4
)

// Prioritize re-ranks matched recipes toward those consuming expired or
// soon-to-expire items. Ingredients that cannot be resolved back to an
// owned item contribute nothing; with an empty inventory the recipes pass
// through with zero urgency in their existing order.
func Prioritize(matched []domain.MatchedRecipe, items []domain.ClassifiedItem) []domain.PrioritizedRecipe {
	prioritized := make([]domain.PrioritizedRecipe, 0, len(matched))

	if len(items) == 0 {
		for _, m := range matched {
			prioritized = append(prioritized, domain.PrioritizedRecipe{MatchedRecipe: m})
		}
		return prioritized
	}

	byName := make(map[string]domain.ClassifiedItem, len(items))
	for _, item := range items {
		byName[strings.ToLower(strings.TrimSpace(item.Name))] = item
	}

	for _, m := range matched {
		p := domain.PrioritizedRecipe{MatchedRecipe: m}
		for _, ingredient := range m.MatchingIngredients {
			item, ok := resolveItem(ingredient, byName, items)
			if !ok {
				continue
			}
			switch item.Status {
			case domain.StatusExpired:
				p.ExpirationUrgency += expiredUrgencyWeight
				p.ExpiringIngredientsCount++
			case domain.StatusExpiringSoon:
				p.ExpirationUrgency += (urgencyWindowDays - item.DaysUntilExpiration) * expiringUrgencyStep
				p.ExpiringIngredientsCount++
			}
		}
		prioritized = append(prioritized, p)
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		if prioritized[i].ExpirationUrgency != prioritized[j].ExpirationUrgency {
			return prioritized[i].ExpirationUrgency > prioritized[j].ExpirationUrgency
		}
		return prioritized[i].MatchScore > prioritized[j].MatchScore
	})

	return prioritized
}

// resolveItem maps an ingredient back to the owned item it matched during
// scoring. Exact lowercase name matches win; otherwise the first
// containment match in inventory input order is taken, which keeps
// resolution deterministic for a given snapshot.
func resolveItem(ingredient string, byName map[string]domain.ClassifiedItem, items []domain.ClassifiedItem) (domain.ClassifiedItem, bool) {
	if item, ok := byName[strings.ToLower(strings.TrimSpace(ingredient))]; ok {
		return item, true
	}
	for _, item := range items {
		if ingredientMatchesItem(ingredient, item.Name) {
			return item, true
		}
	}
	return domain.ClassifiedItem{}, false
}
