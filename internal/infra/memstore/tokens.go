package memstore

import (
	"context"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
)

// TokenStore keeps refresh-token records in memory. Records are keyed by the
// sha256 hash of the raw token; the raw value never reaches the store.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]domain.RefreshTokenRecord
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]domain.RefreshTokenRecord)}
}

func (s *TokenStore) StoreRefreshToken(_ context.Context, rec *domain.RefreshTokenRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[rec.TokenHash] = *rec
	return nil
}

// GetRefreshToken returns the record for tokenHash, or nil when unknown.
func (s *TokenStore) GetRefreshToken(_ context.Context, tokenHash string) (*domain.RefreshTokenRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tokens[tokenHash]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *TokenStore) RevokeRefreshToken(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.tokens, tokenHash)
	return nil
}

func (s *TokenStore) RevokeAllRefreshTokens(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, rec := range s.tokens {
		if rec.UserID == userID {
			delete(s.tokens, hash)
		}
	}
	return nil
}

// KVStorage is an in-memory port.SessionStorage, the test stand-in for the
// browser's durable key-value storage.
type KVStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewKVStorage creates an empty key-value storage.
func NewKVStorage() *KVStorage {
	return &KVStorage{items: make(map[string]string)}
}

func (s *KVStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok
}

func (s *KVStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
}

func (s *KVStorage) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}
