package core

import "context"

// DocumentStore is the shared whole-document key-value store. Every
// mutation is a blind overwrite of one document; concurrent writers
// race with last-write-wins semantics.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// CatalogStore defines access to the menu configuration document.
type CatalogStore interface {
	// Load returns the persisted catalog, or the fixed default when the
	// document is absent or unreadable. It never fails.
	Load(ctx context.Context) CatalogConfig
	// Save overwrites the entire document. No partial update.
	Save(ctx context.Context, cfg CatalogConfig) error
	// ResetToDefault persists the fixed default and returns it.
	ResetToDefault(ctx context.Context) (CatalogConfig, error)
}

// CartStore defines access to the current session's line items.
type CartStore interface {
	// Load returns the persisted items in insertion order, or an empty
	// slice when the document is absent or unreadable.
	Load(ctx context.Context) []LineItem
	// Save overwrites the entire document.
	Save(ctx context.Context, items []LineItem) error
	// Clear empties the store unconditionally.
	Clear(ctx context.Context) error
}

// SalesLedger defines access to the record of finalized orders.
type SalesLedger interface {
	// List returns all records in insertion order.
	List(ctx context.Context) []SaleRecord
	// Append adds one record. Duplicate order ids are accepted.
	Append(ctx context.Context, record SaleRecord) error
	// DeleteByOrderID removes all records matching the id; no-op when
	// none match.
	DeleteByOrderID(ctx context.Context, orderID string) error
}

// PaymentGateway supplies the payment request a QR surface renders.
type PaymentGateway interface {
	Request(orderID string, amount float64) PaymentRequest
}

// MessageGateway covers the messaging handoff: a prefilled chat link
// for the customer and an optional push notification to the shop.
type MessageGateway interface {
	OrderLink(summary string) string
	NotifyShop(ctx context.Context, message string) error
}
