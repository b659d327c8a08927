package payment

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuildsUPIURI(t *testing.T) {
	client := NewClient("talesofbrownies@upi", "Tales of Brownies")

	req := client.Request("TOB-20240105-143045", 1537)

	assert.Equal(t, "TOB-20240105-143045", req.OrderID)
	assert.Equal(t, 1537.0, req.AmountDue)

	parsed, err := url.Parse(req.URI)
	require.NoError(t, err)
	assert.Equal(t, "upi", parsed.Scheme)
	assert.Equal(t, "pay", parsed.Host)

	query := parsed.Query()
	assert.Equal(t, "talesofbrownies@upi", query.Get("pa"))
	assert.Equal(t, "Tales of Brownies", query.Get("pn"))
	assert.Equal(t, "1537.00", query.Get("am"))
	assert.Equal(t, "INR", query.Get("cu"))
	assert.Equal(t, "TOB-20240105-143045", query.Get("tn"))
}
