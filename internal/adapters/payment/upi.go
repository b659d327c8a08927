package payment

import (
	"net/url"
	"strconv"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// Client builds UPI payment requests. There is no payment API behind
// this: the URI is rendered as a QR by the checkout surface and the
// customer self-reports completion.
type Client struct {
	vpa       string
	payeeName string
}

// NewClient creates a UPI payment client for the shop's virtual
// payment address.
func NewClient(vpa, payeeName string) *Client {
	return &Client{vpa: vpa, payeeName: payeeName}
}

// Request returns the payment request for an order: the order id, the
// amount due and a upi://pay deep link carrying both.
func (c *Client) Request(orderID string, amount float64) core.PaymentRequest {
	params := url.Values{}
	params.Set("pa", c.vpa)
	params.Set("pn", c.payeeName)
	params.Set("am", strconv.FormatFloat(amount, 'f', 2, 64))
	params.Set("cu", "INR")
	params.Set("tn", orderID)

	return core.PaymentRequest{
		OrderID:   orderID,
		AmountDue: amount,
		URI:       "upi://pay?" + params.Encode(),
	}
}
