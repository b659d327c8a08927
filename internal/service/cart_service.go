package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// CartService applies the cart business rules on top of the catalog
// and cart stores: topping cardinality, the quantity floor and total
// recomputation from the stored price snapshot.
type CartService struct {
	catalogStore core.CatalogStore
	cartStore    core.CartStore
	log          *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(catalogStore core.CatalogStore, cartStore core.CartStore, log *zap.Logger) *CartService {
	return &CartService{
		catalogStore: catalogStore,
		cartStore:    cartStore,
		log:          log,
	}
}

// Items returns the current cart in insertion order.
func (s *CartService) Items(ctx context.Context) []core.LineItem {
	return s.cartStore.Load(ctx)
}

// GrandTotal returns the sum of the current cart's line totals.
func (s *CartService) GrandTotal(ctx context.Context) float64 {
	return core.GrandTotal(s.cartStore.Load(ctx))
}

// AddItem composes a line item for a size and topping selection,
// snapshotting the current catalog price and image, and appends it to
// the cart. Standard sizes (250g/500g) require exactly one topping;
// bulk sizes accept zero or one.
func (s *CartService) AddItem(ctx context.Context, size int, toppingNames []string, quantity int) (*core.LineItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	catalog := s.catalogStore.Load(ctx)
	sizeOption, ok := catalog.Sizes[size]
	if !ok {
		return nil, core.NewValidationError("size %d is not on the menu", size)
	}

	if len(toppingNames) > 1 {
		return nil, core.NewValidationError("only one topping is allowed per item")
	}
	if len(toppingNames) == 0 && !core.IsBulkSize(size) {
		return nil, core.NewValidationError("please select one topping for this size")
	}

	toppings := make([]core.ToppingSelection, 0, len(toppingNames))
	for _, name := range toppingNames {
		option, ok := catalog.Toppings[name]
		if !ok {
			return nil, core.NewValidationError("topping %q is not on the menu", name)
		}
		toppings = append(toppings, core.ToppingSelection{
			Name:  name,
			Price: option.PriceForSize(size),
		})
	}

	item := core.LineItem{
		ID:        uuid.New().String(),
		Size:      size,
		SizeLabel: core.SizeLabel(size),
		BasePrice: sizeOption.Price,
		Image:     sizeOption.Image,
		Toppings:  toppings,
		Quantity:  quantity,
		Total:     core.ItemTotal(sizeOption.Price, toppings, quantity),
	}

	items := append(s.cartStore.Load(ctx), item)
	if err := s.cartStore.Save(ctx, items); err != nil {
		return nil, err
	}

	s.log.Info("item added to cart",
		zap.String("item_id", item.ID),
		zap.Int("size", size),
		zap.Float64("total", item.Total))

	return &item, nil
}

// SetQuantity updates an item's quantity and recomputes its total from
// the stored snapshot, never re-reading the catalog. A quantity below 1
// removes the item; an unknown id is a silent no-op.
func (s *CartService) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return s.RemoveItem(ctx, itemID)
	}

	items := s.cartStore.Load(ctx)
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		items[i].Quantity = quantity
		items[i].Total = core.ItemTotal(items[i].BasePrice, items[i].Toppings, quantity)
		return s.cartStore.Save(ctx, items)
	}
	return nil
}

// RemoveItem removes an item by id, a silent no-op when absent.
func (s *CartService) RemoveItem(ctx context.Context, itemID string) error {
	items := s.cartStore.Load(ctx)
	kept := make([]core.LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.cartStore.Save(ctx, kept)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context) error {
	return s.cartStore.Clear(ctx)
}
