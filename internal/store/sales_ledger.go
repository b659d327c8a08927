package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// SalesLedger persists finalized orders as one JSON document. Records
// are append-only from the storefront's perspective; only the admin
// delete removes them.
type SalesLedger struct {
	docs core.DocumentStore
	log  *zap.Logger
}

// NewSalesLedger creates a ledger over a document backend.
func NewSalesLedger(docs core.DocumentStore, log *zap.Logger) *SalesLedger {
	return &SalesLedger{docs: docs, log: log}
}

// List returns all records in insertion order. An absent or unreadable
// document yields an empty ledger.
func (s *SalesLedger) List(ctx context.Context) []core.SaleRecord {
	data, err := s.docs.Get(ctx, SalesKey)
	if err != nil {
		if !errors.Is(err, core.ErrDocumentNotFound) {
			s.log.Warn("sales document unreadable, using empty ledger", zap.Error(err))
		}
		return []core.SaleRecord{}
	}

	var records []core.SaleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("sales document corrupt, using empty ledger", zap.Error(err))
		return []core.SaleRecord{}
	}
	if records == nil {
		records = []core.SaleRecord{}
	}
	return records
}

// Append adds one record. No duplicate-orderId check is performed;
// colliding ids are accepted silently.
func (s *SalesLedger) Append(ctx context.Context, record core.SaleRecord) error {
	records := append(s.List(ctx), record)
	return s.save(ctx, records)
}

// DeleteByOrderID removes all records matching the id, a no-op when
// none match. Confirmation is a caller concern.
func (s *SalesLedger) DeleteByOrderID(ctx context.Context, orderID string) error {
	records := s.List(ctx)
	kept := make([]core.SaleRecord, 0, len(records))
	for _, record := range records {
		if record.OrderID != orderID {
			kept = append(kept, record)
		}
	}
	return s.save(ctx, kept)
}

func (s *SalesLedger) save(ctx context.Context, records []core.SaleRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal sales: %w", err)
	}
	if err := s.docs.Put(ctx, SalesKey, data); err != nil {
		return fmt.Errorf("failed to save sales: %w", err)
	}
	return nil
}
