// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations: the in-memory stores in
// internal/infra/memstore today, any real database tomorrow.
package port

import (
	"context"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// CategoryStore persists the category taxonomy.
type CategoryStore interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// StaffStore persists staff profiles.
type StaffStore interface {
	FindByID(ctx context.Context, id string) (*domain.StaffProfile, error)
	FindAll(ctx context.Context) ([]domain.StaffProfile, error)
	Insert(ctx context.Context, s *domain.StaffProfile) error
	Update(ctx context.Context, s *domain.StaffProfile) error
	Delete(ctx context.Context, id string) error
}

// InviteStore persists staff invites.
type InviteStore interface {
	FindByID(ctx context.Context, id string) (*domain.StaffInvite, error)
	FindAll(ctx context.Context) ([]domain.StaffInvite, error)
	FindPendingByEmail(ctx context.Context, email string) (*domain.StaffInvite, error)
	Insert(ctx context.Context, inv *domain.StaffInvite) error
	Update(ctx context.Context, inv *domain.StaffInvite) error
	Delete(ctx context.Context, id string) error
}

// ProductStore persists catalog items.
type ProductStore interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// BranchDirectory resolves branch ids to display names.
type BranchDirectory interface {
	BranchName(ctx context.Context, branchID string) (string, error)
}

// BrandStore persists the single brand profile.
type BrandStore interface {
	Get(ctx context.Context) (*domain.Brand, error)
	Save(ctx context.Context, b *domain.Brand) error
}

// TokenStore persists refresh-token records for the auth service.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, rec *domain.RefreshTokenRecord) error
	GetRefreshToken(ctx context.Context, tokenHash string) (*domain.RefreshTokenRecord, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllRefreshTokens(ctx context.Context, userID string) error
}

// Cache provides generic caching with TTL. Keys are
// "<collection>:<serialized filter>"; DeleteByPrefix clears a collection's
// list-cache family after a mutation.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	DeleteByPrefix(prefix string)
}

// InviteNotifier delivers invite emails. The default implementation only
// logs the message.
type InviteNotifier interface {
	SendInvite(ctx context.Context, inv *domain.StaffInvite) error
}

// SessionStorage is the durable client-side key-value store backing the
// session holder (localStorage equivalent).
type SessionStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}
