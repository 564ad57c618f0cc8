// Package session holds the per-client user/token state every page reads.
// One Store is constructed per session key and injected into the pages
// that need it; there is no ambient global.
package session

import (
	"context"
	"sync"

	"frontend/internal/domain/models"
	"frontend/internal/token"
	"frontend/internal/utils"
)

// UserFetcher is the "get current user" slice of the backend client.
type UserFetcher interface {
	FetchUser(ctx context.Context, token string) (models.User, error)
}

// Store is the session state machine. Once Initialize has run, User is
// never nil while a token exists, even on total decode failure.
type Store struct {
	storage TokenStorage
	key     string
	fetcher UserFetcher

	mu         sync.Mutex
	user       *models.User
	token      string
	refreshGen uint64
}

func NewStore(storage TokenStorage, key string, fetcher UserFetcher) *Store {
	return &Store{storage: storage, key: key, fetcher: fetcher}
}

// Initialize loads the persisted token, if any, and resolves the user via
// the decode fallback chain. Without a token the anonymous placeholder is
// adopted, so the user is never nil once Initialize returns.
func (s *Store) Initialize(ctx context.Context) error {
	tok, err := s.storage.Load(ctx, s.key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		anon := models.Anonymous()
		s.token = ""
		s.user = &anon
		return err
	}
	if tok == "" {
		anon := models.Anonymous()
		s.token = ""
		s.user = &anon
		return nil
	}
	s.token = tok
	s.user = userFromToken(tok)
	return nil
}

// Login persists the token and adopts userData when the backend supplied
// it, otherwise falls back to decoding the token payload.
func (s *Store) Login(ctx context.Context, tok string, userData *models.User) error {
	if err := s.storage.Save(ctx, s.key, tok); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	if userData != nil {
		u := *userData
		s.user = &u
		return nil
	}
	s.user = userFromToken(tok)
	return nil
}

// Logout clears the persisted token and resets in-memory state.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.Clear(ctx, s.key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

// UpdateVerification flips the verification flag on the current user.
// No-op when no user is set.
func (s *Store) UpdateVerification(verified bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return
	}
	u := *s.user
	u.IsVerified = verified
	s.user = &u
}

// UpdateUser replaces the current user record unconditionally.
func (s *Store) UpdateUser(userData models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := userData
	s.user = &u
}

// RefreshUser fetches the authoritative profile for the current token.
// Best-effort: without a token nothing happens, and on error the prior
// state is preserved. A generation guard drops stale responses when two
// refreshes race, so the newest response always wins.
func (s *Store) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return nil
	}
	s.refreshGen++
	gen := s.refreshGen
	tok := s.token
	s.mu.Unlock()

	u, err := s.fetcher.FetchUser(ctx, tok)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		utils.LogEvent("", "session", "refresh", "fetch user failed: "+err.Error())
		return err
	}
	if gen != s.refreshGen || s.token != tok {
		// superseded by a newer refresh or a login/logout
		return nil
	}
	s.user = &u
	return nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func userFromToken(tok string) *models.User {
	claims, err := token.Decode(tok)
	if err != nil {
		utils.LogEvent("", "session", "decode", err.Error())
	}
	u := token.ResolveUser(claims)
	return &u
}
