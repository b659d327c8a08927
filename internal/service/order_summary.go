package service

import (
	"fmt"
	"strings"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/pkg/currency"
)

// OrderSummaryText composes the human-readable order message sent to
// the shop over WhatsApp. It is derived from the sale record alone.
func OrderSummaryText(record core.SaleRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order ID: %s\n\n", record.OrderID)

	b.WriteString("Customer Details:\n")
	customer := record.CustomerInfo
	if customer == nil {
		customer = &core.CustomerInfo{}
	}
	fmt.Fprintf(&b, "Name: %s\n", customer.Name)
	fmt.Fprintf(&b, "Phone: %s\n", customer.Phone)
	fmt.Fprintf(&b, "Address: %s\n\n", customer.Address)

	b.WriteString("Order Items:\n")
	for i, item := range record.Items {
		fmt.Fprintf(&b, "%d. %s Brownie x%d\n", i+1, item.Size, item.Quantity)
		if len(item.Toppings) > 0 {
			names := make([]string, len(item.Toppings))
			for j, topping := range item.Toppings {
				names[j] = topping.Name
			}
			fmt.Fprintf(&b, "   Toppings: %s\n", strings.Join(names, ", "))
		}
		fmt.Fprintf(&b, "   Price: %s\n\n", currency.FormatINR(item.Total))
	}

	fmt.Fprintf(&b, "Total Amount: %s", currency.FormatINR(record.Total))
	return b.String()
}
