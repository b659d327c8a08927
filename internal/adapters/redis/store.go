package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// Store implements core.DocumentStore on Redis. Each document lives
// whole under its key; SET overwrites unconditionally, which is what
// gives the store its last-write-wins behavior across instances.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis document store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get retrieves a document.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, core.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	return val, nil
}

// Put overwrites a document. Documents never expire.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
