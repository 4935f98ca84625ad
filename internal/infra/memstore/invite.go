package memstore

import (
	"context"
	"strings"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// InviteStore is an in-memory staff-invite collection.
type InviteStore struct {
	mu    sync.RWMutex
	items []domain.StaffInvite
}

// NewInviteStore creates an empty invite store.
func NewInviteStore() *InviteStore {
	return &InviteStore{}
}

func (s *InviteStore) FindByID(_ context.Context, id string) (*domain.StaffInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			inv := s.items[i]
			return &inv, nil
		}
	}
	return nil, &domain.ErrNotFound{Resource: "invite", ID: id}
}

func (s *InviteStore) FindAll(_ context.Context) ([]domain.StaffInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StaffInvite, len(s.items))
	copy(out, s.items)
	return out, nil
}

// FindPendingByEmail returns the pending invite for email, or nil when none
// exists. At most one pending invite per address is ever stored.
func (s *InviteStore) FindPendingByEmail(_ context.Context, email string) (*domain.StaffInvite, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if strings.EqualFold(s.items[i].Email, email) && s.items[i].Status == domain.InvitePending {
			inv := s.items[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (s *InviteStore) Insert(_ context.Context, inv *domain.StaffInvite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, *inv)
	return nil
}

func (s *InviteStore) Update(_ context.Context, inv *domain.StaffInvite) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == inv.ID {
			s.items[i] = *inv
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "invite", ID: inv.ID}
}

func (s *InviteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &domain.ErrNotFound{Resource: "invite", ID: id}
}
