package store

import (
	"context"
	"sync"

	"github.com/sahulat/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory program corpus and chat log. The
// corpus is read-only after seeding; the chat log is append-only and
// best-effort.
type MemoryStore struct {
	programs []domain.Program
	chats    []domain.ChatRecord
	mutex    sync.RWMutex
}

// NewMemoryStore creates a store holding the given corpus. Pass nil for an
// empty corpus.
func NewMemoryStore(programs []domain.Program) *MemoryStore {
	return &MemoryStore{programs: programs}
}

// ListPrograms returns the active programs in corpus order.
func (s *MemoryStore) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	programs := make([]domain.Program, 0, len(s.programs))
	for _, p := range s.programs {
		if p.Active {
			programs = append(programs, p)
		}
	}
	return programs, nil
}

// ListByCategory returns the active programs of one category, in corpus order.
func (s *MemoryStore) ListByCategory(ctx context.Context, category domain.Category) ([]domain.Program, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.ErrInvalidRequest
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var programs []domain.Program
	for _, p := range s.programs {
		if p.Active && p.Category == category {
			programs = append(programs, p)
		}
	}
	return programs, nil
}

// Append records one chat exchange.
func (s *MemoryStore) Append(ctx context.Context, record domain.ChatRecord) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.chats = append(s.chats, record)
	return nil
}

// ChatCount returns the number of recorded exchanges (for monitoring).
func (s *MemoryStore) ChatCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.chats)
}
