package session

import (
	"context"
	"sync"
)

// TokenStorage persists the single bearer-token string behind a session
// key. Absence is reported as an empty token, not an error.
type TokenStorage interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, token string) error
	Clear(ctx context.Context, key string) error
}

// MemoryStorage keeps tokens in-process. Used when no session DSN is
// configured and in tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{tokens: map[string]string{}}
}

func (m *MemoryStorage) Load(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokens[key], nil
}

func (m *MemoryStorage) Save(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[key] = token
	return nil
}

func (m *MemoryStorage) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, key)
	return nil
}
