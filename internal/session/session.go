// Package session keeps the authenticated user's tokens and profile in a
// durable key-value storage. It mirrors how the admin UI persists its login
// across restarts: three keys that are always written and cleared together.
package session

import (
	"encoding/json"
	"sync"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/port"
)

const (
	keyAccessToken  = "accessToken"
	keyRefreshToken = "refreshToken"
	keyUser         = "user"
)

// Session holds the current login. All methods are safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	storage port.SessionStorage

	user         *domain.User
	accessToken  string
	refreshToken string
}

// New creates a session over storage and loads any persisted login.
// A partially persisted login (any of the three keys missing or the user
// record unparsable) is discarded entirely so the session is never
// half-populated.
func New(storage port.SessionStorage) *Session {
	s := &Session{storage: storage}
	s.load()
	return s
}

func (s *Session) load() {
	access, okA := s.storage.Get(keyAccessToken)
	refresh, okR := s.storage.Get(keyRefreshToken)
	rawUser, okU := s.storage.Get(keyUser)
	if !okA || !okR || !okU {
		s.clearStorage()
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.clearStorage()
		return
	}

	s.user = &user
	s.accessToken = access
	s.refreshToken = refresh
}

// Save stores the login in memory and persists all three keys.
func (s *Session) Save(user *domain.User, tokens domain.AuthTokens) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.user = &u
	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken

	s.storage.Set(keyAccessToken, tokens.AccessToken)
	s.storage.Set(keyRefreshToken, tokens.RefreshToken)
	s.storage.Set(keyUser, string(raw))
	return nil
}

// UpdateTokens replaces the token pair after a refresh, keeping the user.
func (s *Session) UpdateTokens(tokens domain.AuthTokens) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.storage.Set(keyAccessToken, tokens.AccessToken)
	s.storage.Set(keyRefreshToken, tokens.RefreshToken)
}

// Clear drops the login from memory and storage. Called on logout and on
// any 401 from the backend.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.accessToken = ""
	s.refreshToken = ""
	s.clearStorage()
}

func (s *Session) clearStorage() {
	s.storage.Delete(keyAccessToken)
	s.storage.Delete(keyRefreshToken)
	s.storage.Delete(keyUser)
}

// User returns a copy of the logged-in user, or nil when logged out.
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// AccessToken returns the current access token ("" when logged out).
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token ("" when logged out).
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// IsAuthenticated reports whether a complete login is present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.accessToken != ""
}
