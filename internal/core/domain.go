package core

import (
	"fmt"
	"time"
)

// SizeOption is one purchasable brownie weight in the catalog.
type SizeOption struct {
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// ToppingOption holds the per-tier surcharge for a topping. Only the
// 250g and 500g tiers carry a surcharge; bulk sizes are priced without
// one, so lookups for any other size resolve to zero.
type ToppingOption struct {
	Price250 float64 `json:"250"`
	Price500 float64 `json:"500"`
	Image    string  `json:"image,omitempty"`
}

// PriceForSize returns the surcharge for adding this topping to the
// given size.
func (t ToppingOption) PriceForSize(size int) float64 {
	switch size {
	case 250:
		return t.Price250
	case 500:
		return t.Price500
	default:
		return 0
	}
}

// CatalogConfig is the whole menu document: sizes keyed by weight in
// grams, toppings keyed by name.
type CatalogConfig struct {
	Sizes    map[int]SizeOption       `json:"sizes"`
	Toppings map[string]ToppingOption `json:"toppings"`
}

// ToppingSelection is a price snapshot of one topping on a line item,
// taken when the item is added. Later catalog edits do not touch it.
type ToppingSelection struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// LineItem is one configured purchase held in the cart. BasePrice and
// Image are copies of the catalog values at add time; Total is stored
// denormalized and recomputed on every quantity change.
type LineItem struct {
	ID        string             `json:"id"`
	Size      int                `json:"size"`
	SizeLabel string             `json:"sizeLabel"`
	BasePrice float64            `json:"basePrice"`
	Image     string             `json:"image"`
	Toppings  []ToppingSelection `json:"toppings"`
	Quantity  int                `json:"quantity"`
	Total     float64            `json:"total"`
}

// CustomerInfo is captured once per order at checkout.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Validate rejects incomplete customer details.
func (c CustomerInfo) Validate() error {
	if c.Name == "" || c.Phone == "" || c.Address == "" {
		return NewValidationError("customer name, phone and address are required")
	}
	return nil
}

// SaleItem is the frozen form a line item takes inside a sale record.
// Size holds the display label, not the numeric weight.
type SaleItem struct {
	Size      string             `json:"size"`
	BasePrice float64            `json:"basePrice"`
	Toppings  []ToppingSelection `json:"toppings"`
	Quantity  int                `json:"quantity"`
	Total     float64            `json:"total"`
}

// SaleRecord is one finalized order in the ledger. The aggregate fields
// are computed once at finalization and never recomputed, so records
// keep historical pricing even after catalog edits.
type SaleRecord struct {
	OrderID      string        `json:"orderId"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	CustomerInfo *CustomerInfo `json:"customerInfo"`
	Items        []SaleItem    `json:"items"`
	ItemCount    int           `json:"itemCount"`
	ToppingCount int           `json:"toppingCount"`
	Total        float64       `json:"total"`
}

// SaleFilter narrows a ledger listing. Zero values leave a dimension
// unfiltered; month and year combine conjunctively.
type SaleFilter struct {
	Month int
	Year  int
}

// SalesSummary aggregates a set of sale records.
type SalesSummary struct {
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	ItemUnits    int     `json:"itemUnits"`
	ToppingUnits int     `json:"toppingUnits"`
}

// PaymentRequest is what the payment-QR surface needs to render.
type PaymentRequest struct {
	OrderID   string  `json:"orderId"`
	AmountDue float64 `json:"amountDue"`
	URI       string  `json:"uri"`
}

// OrderDraft is the checkout preview shown while payment is pending.
// Abandoning it leaves every store untouched.
type OrderDraft struct {
	OrderID      string         `json:"orderId"`
	Date         string         `json:"date"`
	Time         string         `json:"time"`
	Items        []LineItem     `json:"items"`
	ItemCount    int            `json:"itemCount"`
	ToppingCount int            `json:"toppingCount"`
	Total        float64        `json:"total"`
	Payment      PaymentRequest `json:"payment"`
}

// OrderHandoff carries everything the external payment and messaging
// surfaces need after finalization, derived from the sale record alone
// with no further store access.
type OrderHandoff struct {
	Summary      string         `json:"summary"`
	WhatsAppLink string         `json:"whatsappLink"`
	Payment      PaymentRequest `json:"payment"`
}

// IsBulkSize reports whether a size is a bulk tier (750g or 1KG),
// exempt from the one-topping rule.
func IsBulkSize(size int) bool {
	return size == 750 || size == 1000
}

// SizeLabel renders the display label for a weight.
func SizeLabel(size int) string {
	if size == 1000 {
		return "1KG"
	}
	return fmt.Sprintf("%dg", size)
}

// ItemTotal computes (basePrice + topping surcharges) * quantity.
func ItemTotal(basePrice float64, toppings []ToppingSelection, quantity int) float64 {
	sum := basePrice
	for _, t := range toppings {
		sum += t.Price
	}
	return sum * float64(quantity)
}

// GrandTotal sums the stored line totals of a cart.
func GrandTotal(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Total
	}
	return total
}

// CountUnits returns the brownie and topping unit counts of a cart, as
// stored denormalized on sale records.
func CountUnits(items []LineItem) (itemUnits, toppingUnits int) {
	for _, item := range items {
		itemUnits += item.Quantity
		toppingUnits += len(item.Toppings) * item.Quantity
	}
	return itemUnits, toppingUnits
}

// GenerateOrderID builds the order number for a finalization instant.
// Two orders finalized within the same second collide; the ledger
// accepts duplicates rather than inventing ids the storefront never
// displayed.
func GenerateOrderID(now time.Time) string {
	return fmt.Sprintf("TOB-%s-%s", now.Format("20060102"), now.Format("150405"))
}

const (
	saleDateLayout = "02/01/2006"
	saleTimeLayout = "15:04:05"
)

// FormatSaleDate renders the display date stored on a sale record.
func FormatSaleDate(now time.Time) string {
	return now.Format(saleDateLayout)
}

// FormatSaleTime renders the display time stored on a sale record.
func FormatSaleTime(now time.Time) string {
	return now.Format(saleTimeLayout)
}

var saleDateParseLayouts = []string{"2006-01-02", "02/01/2006", "2/1/2006"}

// ParseSaleDate parses the date string of a sale record as a calendar
// date. Records written by this system use DD/MM/YYYY; ISO dates are
// accepted as well.
func ParseSaleDate(value string) (time.Time, bool) {
	for _, layout := range saleDateParseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterSales returns the records matching the filter, order preserved.
// A record whose date cannot be parsed fails any set dimension.
func FilterSales(records []SaleRecord, filter SaleFilter) []SaleRecord {
	if filter.Month == 0 && filter.Year == 0 {
		return records
	}

	filtered := make([]SaleRecord, 0, len(records))
	for _, record := range records {
		date, ok := ParseSaleDate(record.Date)
		if !ok {
			continue
		}
		if filter.Month != 0 && int(date.Month()) != filter.Month {
			continue
		}
		if filter.Year != 0 && date.Year() != filter.Year {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// AggregateSales sums the denormalized aggregates of a set of records.
func AggregateSales(records []SaleRecord) SalesSummary {
	summary := SalesSummary{Count: len(records)}
	for _, record := range records {
		summary.Revenue += record.Total
		summary.ItemUnits += record.ItemCount
		summary.ToppingUnits += record.ToppingCount
	}
	return summary
}
