package inventory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/foodexpiry/backend/internal/domain"
)

func testItem(name string) domain.InventoryItem {
	return domain.InventoryItem{
		Name:           name,
		Quantity:       1,
		Unit:           "piece",
		Category:       domain.CategoryOther,
		ExpirationDate: time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStore_AddAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	t.Run("assigns ID when missing", func(t *testing.T) {
		stored, err := store.Add(ctx, testItem("milk"))
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if stored.ID == "" {
			t.Error("Add() did not assign an ID")
		}

		got, err := store.Get(ctx, stored.ID)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Name != "milk" {
			t.Errorf("Name = %s, want milk", got.Name)
		}
	})

	t.Run("keeps caller-provided ID", func(t *testing.T) {
		item := testItem("eggs")
		item.ID = "egg-1"
		stored, err := store.Add(ctx, item)
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if stored.ID != "egg-1" {
			t.Errorf("ID = %s, want egg-1", stored.ID)
		}
	})

	t.Run("replaces item with existing ID", func(t *testing.T) {
		item := testItem("eggs")
		item.ID = "egg-1"
		item.Quantity = 12
		if _, err := store.Add(ctx, item); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		got, err := store.Get(ctx, "egg-1")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got.Quantity != 12 {
			t.Errorf("Quantity = %v, want 12", got.Quantity)
		}
	})
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}

func TestMemoryStore_List_InsertionOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	names := []string{"milk", "eggs", "rice", "chicken"}
	for _, name := range names {
		if _, err := store.Add(ctx, testItem(name)); err != nil {
			t.Fatalf("Add(%s) error = %v", name, err)
		}
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != len(names) {
		t.Fatalf("len = %d, want %d", len(items), len(names))
	}
	for i, name := range names {
		if items[i].Name != name {
			t.Errorf("items[%d].Name = %s, want %s", i, items[i].Name, name)
		}
	}
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, _ := store.Add(ctx, testItem("milk"))
	b, _ := store.Add(ctx, testItem("eggs"))
	c, _ := store.Add(ctx, testItem("rice"))

	if err := store.Remove(ctx, b.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if store.Size() != 2 {
		t.Errorf("Size() = %d, want 2", store.Size())
	}

	// Remaining items keep their order and stay reachable by ID
	items, _ := store.List(ctx)
	if items[0].Name != "milk" || items[1].Name != "rice" {
		t.Errorf("order after remove = %s, %s, want milk, rice", items[0].Name, items[1].Name)
	}
	if _, err := store.Get(ctx, a.ID); err != nil {
		t.Errorf("Get(a) error = %v", err)
	}
	if _, err := store.Get(ctx, c.ID); err != nil {
		t.Errorf("Get(c) error = %v", err)
	}

	if err := store.Remove(ctx, b.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("second Remove() error = %v, want ErrItemNotFound", err)
	}
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Add(ctx, testItem("milk"))
	store.Add(ctx, testItem("eggs"))

	store.Clear()
	if store.Size() != 0 {
		t.Errorf("Size() = %d, want 0", store.Size())
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len = %d, want 0", len(items))
	}
}
