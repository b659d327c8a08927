package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/adapters/memory"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/store"
)

func newCartFixture(t *testing.T) (*CartService, *store.CartStore) {
	t.Helper()
	docs := memory.NewStore()
	log := zap.NewNop()
	catalogStore := store.NewCatalogStore(docs, log)
	cartStore := store.NewCartStore(docs, log)
	return NewCartService(catalogStore, cartStore, log), cartStore
}

func TestAddItemStandardSize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	item, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 2)
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 250, item.Size)
	assert.Equal(t, "250g", item.SizeLabel)
	assert.Equal(t, 249.0, item.BasePrice)
	require.Len(t, item.Toppings, 1)
	assert.Equal(t, "Oreo", item.Toppings[0].Name)
	assert.Equal(t, 20.0, item.Toppings[0].Price)
	assert.Equal(t, 538.0, item.Total)

	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, *item, items[0])
}

func TestAddItemToppingCardinality(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, 250, nil, 1)
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	_, err = svc.AddItem(ctx, 500, []string{"Oreo", "Walnuts"}, 1)
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	// Bulk sizes accept zero toppings.
	item, err := svc.AddItem(ctx, 1000, nil, 1)
	require.NoError(t, err)
	assert.Empty(t, item.Toppings)
	assert.Equal(t, 999.0, item.Total)

	// And at most one, priced at zero surcharge.
	item, err = svc.AddItem(ctx, 750, []string{"Nutella"}, 1)
	require.NoError(t, err)
	require.Len(t, item.Toppings, 1)
	assert.Equal(t, 0.0, item.Toppings[0].Price)
	assert.Equal(t, 749.0, item.Total)
}

func TestAddItemUnknownEntries(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, 300, []string{"Oreo"}, 1)
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	_, err = svc.AddItem(ctx, 250, []string{"Caramel"}, 1)
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	assert.Empty(t, svc.Items(ctx))
}

func TestAddItemQuantityFloor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	item, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, 269.0, item.Total)
}

func TestSetQuantityRecomputesFromSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, cartStore := newCartFixture(t)

	item, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 1)
	require.NoError(t, err)

	// A later price change must not affect the stored snapshot.
	items := cartStore.Load(ctx)
	require.Len(t, items, 1)

	require.NoError(t, svc.SetQuantity(ctx, item.ID, 3))
	items = svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 807.0, items[0].Total)
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	item, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 2)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(ctx, item.ID, 0))
	assert.Empty(t, svc.Items(ctx))
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(ctx, "missing", 5))
	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	first, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 1)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, 500, []string{"Walnuts"}, 1)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, first.ID))
	items := svc.Items(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)

	require.NoError(t, svc.RemoveItem(ctx, "missing"))
	assert.Len(t, svc.Items(ctx), 1)
}

func TestGrandTotalAcrossItems(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCartFixture(t)

	_, err := svc.AddItem(ctx, 250, []string{"Oreo"}, 2)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, 1000, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 1537.0, svc.GrandTotal(ctx))

	require.NoError(t, svc.Clear(ctx))
	assert.Equal(t, 0.0, svc.GrandTotal(ctx))
}
