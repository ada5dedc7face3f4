package docstore

import (
	"context"
	"sync"

	"github.com/zenhabit/zenhabit-engine/internal/core/domain"
)

// MemoryStore is a volatile document store for tests and throwaway runs.
type MemoryStore struct {
	mu       sync.RWMutex
	document []byte
	written  bool
}

var _ domain.DocumentStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Read(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.written {
		return nil, domain.ErrDocumentNotFound
	}
	out := make([]byte, len(s.document))
	copy(out, s.document)
	return out, nil
}

func (s *MemoryStore) Write(ctx context.Context, document []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.document = make([]byte, len(document))
	copy(s.document, document)
	s.written = true
	return nil
}
