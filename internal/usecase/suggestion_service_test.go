package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodexpiry/backend/internal/domain"
)

type stubCatalog struct {
	recipes []domain.Recipe
	err     error
}

func (s *stubCatalog) List(ctx context.Context) ([]domain.Recipe, error) {
	return s.recipes, s.err
}

func (s *stubCatalog) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	for _, r := range s.recipes {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

type stubInventory struct {
	items []domain.InventoryItem
	err   error
}

func (s *stubInventory) List(ctx context.Context) ([]domain.InventoryItem, error) {
	return s.items, s.err
}

func (s *stubInventory) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return nil, domain.ErrItemNotFound
}

func (s *stubInventory) Add(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubInventory) Remove(ctx context.Context, id string) error {
	return domain.ErrItemNotFound
}

func newTestService(catalog *stubCatalog, inventory *stubInventory, today time.Time) *SuggestionService {
	svc := NewSuggestionService(catalog, inventory)
	svc.now = func() time.Time { return today }
	return svc
}

func TestClassifyInventory(t *testing.T) {
	today := date(2026, time.March, 10)
	inventory := &stubInventory{items: []domain.InventoryItem{
		{Name: "chicken", ExpirationDate: date(2026, time.March, 9)},
		{Name: "eggs", ExpirationDate: date(2026, time.March, 11)},
		{Name: "rice", ExpirationDate: date(2026, time.June, 1)},
	}}
	svc := newTestService(&stubCatalog{}, inventory, today)

	got, err := svc.ClassifyInventory(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}

	want := []domain.ExpirationStatus{domain.StatusExpired, domain.StatusExpiringSoon, domain.StatusFresh}
	for i, status := range want {
		if got[i].Status != status {
			t.Errorf("item %d status = %v, want %v", i, got[i].Status, status)
		}
	}
}

func TestExpiringSoon(t *testing.T) {
	today := date(2026, time.March, 10)
	inventory := &stubInventory{items: []domain.InventoryItem{
		{Name: "rice", ExpirationDate: date(2026, time.June, 1)},
		{Name: "eggs", ExpirationDate: date(2026, time.March, 12)},
		{Name: "chicken", ExpirationDate: date(2026, time.March, 8)},
	}}
	svc := newTestService(&stubCatalog{}, inventory, today)

	got, err := svc.ExpiringSoon(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (fresh rice excluded)", len(got))
	}
	if got[0].Name != "chicken" || got[1].Name != "eggs" {
		t.Errorf("order = %s, %s, want chicken, eggs (soonest first)", got[0].Name, got[1].Name)
	}
}

func TestSuggest(t *testing.T) {
	today := date(2026, time.March, 10)

	t.Run("ranks urgent recipes first", func(t *testing.T) {
		catalog := &stubCatalog{recipes: []domain.Recipe{
			{ID: "stir-fry", Title: "Chicken Stir Fry", Ingredients: []string{"chicken", "rice"}},
			{ID: "pudding", Title: "Rice Pudding", Ingredients: []string{"rice"}},
			{ID: "stew", Title: "Beef Stew", Ingredients: []string{"beef", "carrots"}},
		}}
		inventory := &stubInventory{items: []domain.InventoryItem{
			{Name: "chicken", ExpirationDate: date(2026, time.March, 9)}, // expired
			{Name: "rice", ExpirationDate: date(2026, time.June, 1)},    // fresh
		}}
		svc := newTestService(catalog, inventory, today)

		got, err := svc.Suggest(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2 (beef stew excluded)", len(got))
		}
		if got[0].ID != "stir-fry" {
			t.Errorf("first ID = %s, want stir-fry (uses expired chicken)", got[0].ID)
		}
		if got[0].ExpirationUrgency != 100 {
			t.Errorf("ExpirationUrgency = %d, want 100", got[0].ExpirationUrgency)
		}
		if got[1].ExpirationUrgency != 0 {
			t.Errorf("pudding ExpirationUrgency = %d, want 0", got[1].ExpirationUrgency)
		}
	})

	t.Run("empty inventory yields empty suggestions", func(t *testing.T) {
		catalog := &stubCatalog{recipes: []domain.Recipe{
			{ID: "1", Title: "Omelette", Ingredients: []string{"eggs"}},
		}}
		svc := newTestService(catalog, &stubInventory{}, today)

		got, err := svc.Suggest(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("Suggest() returned nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("catalog failure surfaces as catalog unavailable", func(t *testing.T) {
		catalog := &stubCatalog{err: errors.New("disk gone")}
		svc := newTestService(catalog, &stubInventory{}, today)

		_, err := svc.Suggest(context.Background())
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})
}
