package cart

import (
	"context"
	"sync"
)

// Storage persists one session's serialized line items under a scoped key.
// Implementations back it with whatever local persistence is available.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// Provider hands out a Storage scoped to a single session id.
type Provider interface {
	ForSession(sessionID string) Storage
}

// MemoryProvider keeps carts in process memory. Carts do not survive a
// restart; it serves local development and tests when no Redis is configured.
type MemoryProvider struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{carts: map[string][]byte{}}
}

func (p *MemoryProvider) ForSession(sessionID string) Storage {
	return &memoryStorage{provider: p, sessionID: sessionID}
}

type memoryStorage struct {
	provider  *MemoryProvider
	sessionID string
}

func (s *memoryStorage) Load(ctx context.Context) ([]byte, error) {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	return s.provider.carts[s.sessionID], nil
}

func (s *memoryStorage) Save(ctx context.Context, data []byte) error {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	s.provider.carts[s.sessionID] = data
	return nil
}

func (s *memoryStorage) Clear(ctx context.Context) error {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	delete(s.provider.carts, s.sessionID)
	return nil
}
