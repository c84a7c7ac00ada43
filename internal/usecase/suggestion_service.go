package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/foodexpiry/backend/internal/domain"
)

// SuggestionService composes the expiration classifier, recipe matcher and
// prioritizer over the catalog and inventory collaborators
type SuggestionService struct {
	catalog   domain.RecipeCatalog
	inventory domain.InventoryRepository
	now       func() time.Time
}

// NewSuggestionService creates a suggestion service with dependencies
func NewSuggestionService(catalog domain.RecipeCatalog, inventory domain.InventoryRepository) *SuggestionService {
	return &SuggestionService{
		catalog:   catalog,
		inventory: inventory,
		now:       time.Now,
	}
}

// ClassifyInventory returns the current inventory snapshot with each item's
// expiration status computed against today
func (s *SuggestionService) ClassifyInventory(ctx context.Context) ([]domain.ClassifiedItem, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing inventory: %w", err)
	}

	today := s.now()
	classified := make([]domain.ClassifiedItem, 0, len(items))
	for _, item := range items {
		classified = append(classified, domain.ClassifiedItem{
			InventoryItem:  item,
			Classification: Classify(item.ExpirationDate, today),
		})
	}
	return classified, nil
}

// ExpiringSoon returns only the expired and expiring-soon items, soonest
// first, for the waste-reduction view
func (s *SuggestionService) ExpiringSoon(ctx context.Context) ([]domain.ClassifiedItem, error) {
	classified, err := s.ClassifyInventory(ctx)
	if err != nil {
		return nil, err
	}

	expiring := []domain.ClassifiedItem{}
	for _, item := range classified {
		if item.Status == domain.StatusExpired || item.Status == domain.StatusExpiringSoon {
			expiring = append(expiring, item)
		}
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysUntilExpiration < expiring[j].DaysUntilExpiration
	})
	return expiring, nil
}

// Suggest returns catalog recipes ranked for the current inventory.
// Flow: classify inventory -> match against catalog -> re-rank by urgency.
func (s *SuggestionService) Suggest(ctx context.Context) ([]domain.PrioritizedRecipe, error) {
	recipes, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	classified, err := s.ClassifyInventory(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(classified))
	for _, c := range classified {
		items = append(items, c.InventoryItem)
	}

	matched := Match(recipes, items)
	return Prioritize(matched, classified), nil
}
