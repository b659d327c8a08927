package memory

import (
	"context"
	"sync"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// Store implements core.DocumentStore in process memory. It backs the
// tests and the zero-dependency STORE_BACKEND=memory mode; contents do
// not survive a restart.
type Store struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewStore creates an empty in-memory document store.
func NewStore() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// Get retrieves a document.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[key]
	if !ok {
		return nil, core.ErrDocumentNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Put overwrites a document.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.docs[key] = stored
	return nil
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}
