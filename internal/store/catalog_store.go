package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// CatalogStore persists the menu configuration as one JSON document.
type CatalogStore struct {
	docs core.DocumentStore
	log  *zap.Logger
}

// NewCatalogStore creates a catalog store over a document backend.
func NewCatalogStore(docs core.DocumentStore, log *zap.Logger) *CatalogStore {
	return &CatalogStore{docs: docs, log: log}
}

// Load returns the persisted catalog. An absent document yields the
// fixed default without writing anything; an unreadable one substitutes
// the default too, silently discarding corrupted edits.
func (s *CatalogStore) Load(ctx context.Context) core.CatalogConfig {
	data, err := s.docs.Get(ctx, CatalogKey)
	if err != nil {
		if !errors.Is(err, core.ErrDocumentNotFound) {
			s.log.Warn("catalog document unreadable, using default", zap.Error(err))
		}
		return DefaultCatalog()
	}

	var cfg core.CatalogConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		s.log.Warn("catalog document corrupt, using default", zap.Error(err))
		return DefaultCatalog()
	}
	// A document saved without one of the sections unmarshals to nil
	// maps; callers edit these in place.
	if cfg.Sizes == nil {
		cfg.Sizes = map[int]core.SizeOption{}
	}
	if cfg.Toppings == nil {
		cfg.Toppings = map[string]core.ToppingOption{}
	}
	return cfg
}

// Save overwrites the entire catalog document. The caller supplies
// complete, consistent data; no shape validation happens here.
func (s *CatalogStore) Save(ctx context.Context, cfg core.CatalogConfig) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := s.docs.Put(ctx, CatalogKey, data); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}

// ResetToDefault persists the fixed default and returns it for
// immediate use.
func (s *CatalogStore) ResetToDefault(ctx context.Context) (core.CatalogConfig, error) {
	cfg := DefaultCatalog()
	if err := s.Save(ctx, cfg); err != nil {
		return core.CatalogConfig{}, err
	}
	return cfg, nil
}
