package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// CartStore persists the current line items as one JSON document,
// insertion order preserved.
type CartStore struct {
	docs core.DocumentStore
	log  *zap.Logger
}

// NewCartStore creates a cart store over a document backend.
func NewCartStore(docs core.DocumentStore, log *zap.Logger) *CartStore {
	return &CartStore{docs: docs, log: log}
}

// Load returns the persisted items. An absent or unreadable document
// yields an empty cart.
func (s *CartStore) Load(ctx context.Context) []core.LineItem {
	data, err := s.docs.Get(ctx, CartKey)
	if err != nil {
		if !errors.Is(err, core.ErrDocumentNotFound) {
			s.log.Warn("cart document unreadable, using empty cart", zap.Error(err))
		}
		return []core.LineItem{}
	}

	var items []core.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("cart document corrupt, using empty cart", zap.Error(err))
		return []core.LineItem{}
	}
	if items == nil {
		items = []core.LineItem{}
	}
	return items
}

// Save overwrites the entire cart document.
func (s *CartStore) Save(ctx context.Context, items []core.LineItem) error {
	if items == nil {
		items = []core.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.docs.Put(ctx, CartKey, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear empties the cart unconditionally.
func (s *CartStore) Clear(ctx context.Context) error {
	return s.Save(ctx, []core.LineItem{})
}
