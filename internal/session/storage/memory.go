package storage

import (
	"context"
	"sync"

	"github.com/spec-kit/learnhub-portal/internal/domain"
)

type memoryStorage struct {
	mu    sync.RWMutex
	items map[domain.Role]string
}

// NewMemory builds an in-memory credential storage. Tokens do not survive a
// process restart; intended for tests and ephemeral deployments.
func NewMemory() Storage {
	return &memoryStorage{items: make(map[domain.Role]string)}
}

func (s *memoryStorage) Load(_ context.Context, role domain.Role) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[role], nil
}

func (s *memoryStorage) Save(_ context.Context, role domain.Role, token string) error {
	s.mu.Lock()
	s.items[role] = token
	s.mu.Unlock()
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, role domain.Role) error {
	s.mu.Lock()
	delete(s.items, role)
	s.mu.Unlock()
	return nil
}

func (s *memoryStorage) Close(context.Context) error {
	return nil
}
