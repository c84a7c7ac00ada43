package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/foodexpiry/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory inventory store. Items keep their
// insertion order so downstream ranking stays deterministic for a given
// snapshot.
type MemoryStore struct {
	items []domain.InventoryItem
	index map[string]int
	mutex sync.RWMutex
}

// NewMemoryStore creates an empty in-memory inventory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index: make(map[string]int),
	}
}

// List returns a copy of all items in insertion order
func (s *MemoryStore) List(ctx context.Context) ([]domain.InventoryItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	items := make([]domain.InventoryItem, len(s.items))
	copy(items, s.items)
	return items, nil
}

// Get returns a single item by ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.InventoryItem, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	pos, exists := s.index[id]
	if !exists {
		return nil, domain.ErrItemNotFound
	}
	item := s.items[pos]
	return &item, nil
}

// Add stores an item, assigning an ID when the caller did not provide one,
// and returns the stored item
func (s *MemoryStore) Add(ctx context.Context, item domain.InventoryItem) (*domain.InventoryItem, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}

	if pos, exists := s.index[item.ID]; exists {
		s.items[pos] = item
	} else {
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}

	stored := item
	return &stored, nil
}

// Remove deletes an item by ID
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	pos, exists := s.index[id]
	if !exists {
		return domain.ErrItemNotFound
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}
	return nil
}

// Size returns the current number of items (for debugging/monitoring)
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.items)
}

// Clear removes all items from the store
func (s *MemoryStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.items = nil
	s.index = make(map[string]int)
}
