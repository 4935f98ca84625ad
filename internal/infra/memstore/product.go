package memstore

import (
	"context"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// ProductStore is an in-memory product collection.
type ProductStore struct {
	mu    sync.RWMutex
	items []domain.Product
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{}
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "product", ID: id}
}

func (s *ProductStore) FindAll(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *ProductStore) Insert(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *p)
	return nil
}

func (s *ProductStore) Update(_ context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "product", ID: p.ID}
}

func (s *ProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "product", ID: id}
}
