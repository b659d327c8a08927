package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/memory"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

func TestCatalogStoreLoadDefault(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	catalog := NewCatalogStore(docs, zap.NewNop())

	cfg := catalog.Load(ctx)
	assert.Equal(t, DefaultCatalog(), cfg)

	// Loading the default must not write the document.
	_, err := docs.Get(ctx, CatalogKey)
	assert.ErrorIs(t, err, core.ErrDocumentNotFound)
}

func TestCatalogStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	catalog := NewCatalogStore(memory.NewStore(), zap.NewNop())

	cfg := DefaultCatalog()
	cfg.Sizes[250] = core.SizeOption{Price: 299, Image: "https://example.com/b.jpg"}
	delete(cfg.Toppings, "Oreo")

	require.NoError(t, catalog.Save(ctx, cfg))
	assert.Equal(t, cfg, catalog.Load(ctx))
}

func TestCatalogStoreCorruptDocument(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	require.NoError(t, docs.Put(ctx, CatalogKey, []byte("{not json")))

	catalog := NewCatalogStore(docs, zap.NewNop())
	assert.Equal(t, DefaultCatalog(), catalog.Load(ctx))
}

func TestCatalogStoreLoadEmptyDocument(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	require.NoError(t, docs.Put(ctx, CatalogKey, []byte("{}")))

	catalog := NewCatalogStore(docs, zap.NewNop())
	cfg := catalog.Load(ctx)

	// An empty document is valid JSON, not a corrupt one, so the
	// default does not apply; the maps must still be editable.
	require.NotNil(t, cfg.Sizes)
	require.NotNil(t, cfg.Toppings)
	assert.Empty(t, cfg.Sizes)
	cfg.Sizes[250] = core.SizeOption{Price: 249}
	assert.Equal(t, 249.0, cfg.Sizes[250].Price)
}

func TestCatalogStoreReset(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	catalog := NewCatalogStore(docs, zap.NewNop())

	edited := DefaultCatalog()
	delete(edited.Sizes, 250)
	require.NoError(t, catalog.Save(ctx, edited))

	cfg, err := catalog.ResetToDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), cfg)
	assert.Equal(t, DefaultCatalog(), catalog.Load(ctx))

	// The reset persists, unlike the default substitution on load.
	_, err = docs.Get(ctx, CatalogKey)
	assert.NoError(t, err)
}

func TestCartStoreEmptyAndCorrupt(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	cart := NewCartStore(docs, zap.NewNop())

	assert.Empty(t, cart.Load(ctx))

	require.NoError(t, docs.Put(ctx, CartKey, []byte("][")))
	assert.Empty(t, cart.Load(ctx))
}

func TestCartStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	cart := NewCartStore(memory.NewStore(), zap.NewNop())

	items := []core.LineItem{
		{
			ID:        "item-1",
			Size:      250,
			SizeLabel: "250g",
			BasePrice: 249,
			Toppings:  []core.ToppingSelection{{Name: "Oreo", Price: 20}},
			Quantity:  2,
			Total:     538,
		},
		{
			ID:        "item-2",
			Size:      1000,
			SizeLabel: "1KG",
			BasePrice: 999,
			Toppings:  []core.ToppingSelection{},
			Quantity:  1,
			Total:     999,
		},
	}

	require.NoError(t, cart.Save(ctx, items))
	assert.Equal(t, items, cart.Load(ctx))

	require.NoError(t, cart.Clear(ctx))
	assert.Empty(t, cart.Load(ctx))
}

func TestSalesLedgerAppendAllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	ledger := NewSalesLedger(memory.NewStore(), zap.NewNop())

	record := core.SaleRecord{OrderID: "TOB-20240105-143045", Date: "05/01/2024", Total: 837}
	require.NoError(t, ledger.Append(ctx, record))
	require.NoError(t, ledger.Append(ctx, record))

	records := ledger.List(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, record.OrderID, records[0].OrderID)
	assert.Equal(t, record.OrderID, records[1].OrderID)
}

func TestSalesLedgerDeleteByOrderID(t *testing.T) {
	ctx := context.Background()
	ledger := NewSalesLedger(memory.NewStore(), zap.NewNop())

	require.NoError(t, ledger.Append(ctx, core.SaleRecord{OrderID: "TOB-1"}))
	require.NoError(t, ledger.Append(ctx, core.SaleRecord{OrderID: "TOB-2"}))
	require.NoError(t, ledger.Append(ctx, core.SaleRecord{OrderID: "TOB-1"}))

	// Removes every colliding record, not just the first.
	require.NoError(t, ledger.DeleteByOrderID(ctx, "TOB-1"))
	records := ledger.List(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "TOB-2", records[0].OrderID)

	// Unknown id is a silent no-op.
	require.NoError(t, ledger.DeleteByOrderID(ctx, "TOB-404"))
	assert.Len(t, ledger.List(ctx), 1)
}

func TestSalesLedgerCorruptDocument(t *testing.T) {
	ctx := context.Background()
	docs := memory.NewStore()
	require.NoError(t, docs.Put(ctx, SalesKey, []byte("oops")))

	ledger := NewSalesLedger(docs, zap.NewNop())
	assert.Empty(t, ledger.List(ctx))
}
