package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/events"
)

// CheckoutService drives the order finalization flow: drafting the
// payment request while the customer pays, then converting the cart
// into a ledger record on explicit confirmation. Only Finalize has a
// persistent effect; abandoned drafts leave every store untouched.
type CheckoutService struct {
	cartStore core.CartStore
	ledger    core.SalesLedger
	payments  core.PaymentGateway
	messages  core.MessageGateway
	eventBus  *events.EventBus
	log       *zap.Logger
	now       func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartStore core.CartStore,
	ledger core.SalesLedger,
	payments core.PaymentGateway,
	messages core.MessageGateway,
	eventBus *events.EventBus,
	log *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartStore: cartStore,
		ledger:    ledger,
		payments:  payments,
		messages:  messages,
		eventBus:  eventBus,
		log:       log,
		now:       time.Now,
	}
}

// PrepareOrder builds the checkout preview for the current cart: order
// id, display date/time, aggregate counts and the payment request the
// QR surface renders. Nothing is persisted.
func (s *CheckoutService) PrepareOrder(ctx context.Context) (*core.OrderDraft, error) {
	items := s.cartStore.Load(ctx)
	if len(items) == 0 {
		return nil, core.NewValidationError("your cart is empty")
	}

	now := s.now()
	orderID := core.GenerateOrderID(now)
	itemUnits, toppingUnits := core.CountUnits(items)
	total := core.GrandTotal(items)

	return &core.OrderDraft{
		OrderID:      orderID,
		Date:         core.FormatSaleDate(now),
		Time:         core.FormatSaleTime(now),
		Items:        items,
		ItemCount:    itemUnits,
		ToppingCount: toppingUnits,
		Total:        total,
		Payment:      s.payments.Request(orderID, total),
	}, nil
}

// Finalize converts the current cart into exactly one sale record and
// empties the cart. It runs only on the customer's explicit payment
// confirmation; the returned handoff carries the summary text and
// WhatsApp link with no further store access needed.
func (s *CheckoutService) Finalize(ctx context.Context, orderID string, customer core.CustomerInfo) (*core.SaleRecord, *core.OrderHandoff, error) {
	if err := customer.Validate(); err != nil {
		return nil, nil, err
	}

	items := s.cartStore.Load(ctx)
	if len(items) == 0 {
		return nil, nil, core.NewValidationError("your cart is empty")
	}

	now := s.now()
	if orderID == "" {
		orderID = core.GenerateOrderID(now)
	}

	saleItems := make([]core.SaleItem, len(items))
	for i, item := range items {
		toppings := make([]core.ToppingSelection, len(item.Toppings))
		copy(toppings, item.Toppings)
		saleItems[i] = core.SaleItem{
			Size:      item.SizeLabel,
			BasePrice: item.BasePrice,
			Toppings:  toppings,
			Quantity:  item.Quantity,
			Total:     item.Total,
		}
	}

	itemUnits, toppingUnits := core.CountUnits(items)
	record := core.SaleRecord{
		OrderID:      orderID,
		Date:         core.FormatSaleDate(now),
		Time:         core.FormatSaleTime(now),
		CustomerInfo: &customer,
		Items:        saleItems,
		ItemCount:    itemUnits,
		ToppingCount: toppingUnits,
		Total:        core.GrandTotal(items),
	}

	if err := s.ledger.Append(ctx, record); err != nil {
		return nil, nil, err
	}
	if err := s.cartStore.Clear(ctx); err != nil {
		return nil, nil, err
	}

	summary := OrderSummaryText(record)
	handoff := &core.OrderHandoff{
		Summary:      summary,
		WhatsAppLink: s.messages.OrderLink(summary),
		Payment:      s.payments.Request(orderID, record.Total),
	}

	s.eventBus.PublishSaleRecorded(record)

	// The notification is best-effort; the sale is already recorded.
	if err := s.messages.NotifyShop(ctx, summary); err != nil {
		s.log.Warn("failed to notify shop of new order",
			zap.String("order_id", orderID), zap.Error(err))
	}

	s.log.Info("order finalized",
		zap.String("order_id", orderID),
		zap.Int("items", len(record.Items)),
		zap.Float64("total", record.Total))

	return &record, handoff, nil
}
