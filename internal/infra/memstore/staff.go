package memstore

import (
	"context"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// StaffStore is an in-memory staff collection.
type StaffStore struct {
	mu    sync.RWMutex
	items []domain.StaffProfile
}

// NewStaffStore creates an empty staff store.
func NewStaffStore() *StaffStore {
	return &StaffStore{}
}

func (s *StaffStore) FindByID(_ context.Context, id string) (*domain.StaffProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "staff member", ID: id}
}

func (s *StaffStore) FindAll(_ context.Context) ([]domain.StaffProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StaffProfile, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *StaffStore) Insert(_ context.Context, p *domain.StaffProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *p)
	return nil
}

func (s *StaffStore) Update(_ context.Context, p *domain.StaffProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i] = *p
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "staff member", ID: p.ID}
}

func (s *StaffStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "staff member", ID: id}
}
