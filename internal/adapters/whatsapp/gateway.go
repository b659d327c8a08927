package whatsapp

import (
	"context"
	"fmt"
	"net/url"
)

// Gateway implements core.MessageGateway. The order handoff is a
// prefilled chat link to the shop's number; the Cloud API client is
// only used for the optional shop notification and may be absent.
type Gateway struct {
	shopNumber string
	client     *Client
}

// NewGateway creates a messaging gateway for the shop's WhatsApp
// number (international format, no plus sign). client may be nil when
// Cloud API credentials are not configured.
func NewGateway(shopNumber string, client *Client) *Gateway {
	return &Gateway{shopNumber: shopNumber, client: client}
}

// OrderLink builds the prefilled-message link the customer opens after
// payment. The summary text survives the redirect URL-encoded.
func (g *Gateway) OrderLink(summary string) string {
	return fmt.Sprintf("https://api.whatsapp.com/send?phone=%s&text=%s",
		g.shopNumber, url.QueryEscape(summary))
}

// NotifyShop pushes a text message to the shop's number via the Cloud
// API. A no-op when no client is configured.
func (g *Gateway) NotifyShop(ctx context.Context, message string) error {
	if g.client == nil {
		return nil
	}
	return g.client.SendText(ctx, g.shopNumber, message)
}
