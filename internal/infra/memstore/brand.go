package memstore

import (
	"context"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// BrandStore holds the single brand profile.
type BrandStore struct {
	mu    sync.RWMutex
	brand *domain.Brand
}

// NewBrandStore creates an empty brand store.
func NewBrandStore() *BrandStore {
	return &BrandStore{}
}

func (s *BrandStore) Get(_ context.Context) (*domain.Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.brand == nil {
		return nil, &domain.ErrNotFound{Resource: "brand", ID: "default"}
	}
	b := *s.brand
	return &b, nil
}

func (s *BrandStore) Save(_ context.Context, b *domain.Brand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copy := *b
	s.brand = &copy
	return nil
}

// BranchDirectory maps branch ids to display names. Stands in for the branch
// service the staff module depends on.
type BranchDirectory struct {
	mu       sync.RWMutex
	branches map[string]string
}

// NewBranchDirectory creates a directory with the given id → name entries.
func NewBranchDirectory(branches map[string]string) *BranchDirectory {
	m := make(map[string]string, len(branches))
	for id, name := range branches {
		m[id] = name
	}
	return &BranchDirectory{branches: m}
}

func (d *BranchDirectory) BranchName(_ context.Context, branchID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	name, ok := d.branches[branchID]
	if !ok {
		return "", &domain.ErrNotFound{Resource: "branch", ID: branchID}
	}
	return name, nil
}
