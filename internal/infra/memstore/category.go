package memstore

import (
	"context"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// CategoryStore is an in-memory category collection.
type CategoryStore struct {
	mu    sync.RWMutex
	items []domain.Category
}

// NewCategoryStore creates an empty category store.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

func (s *CategoryStore) FindByID(_ context.Context, id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			c := s.items[i]
			return &c, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "category", ID: id}
}

func (s *CategoryStore) FindAll(_ context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Category, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *CategoryStore) Insert(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *c)
	return nil
}

func (s *CategoryStore) Update(_ context.Context, c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = *c
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "category", ID: c.ID}
}

func (s *CategoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "category", ID: id}
}
