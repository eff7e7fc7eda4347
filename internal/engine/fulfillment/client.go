package fulfillment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/anonymous-sherlock/shopify-api/internal/engine/orders"
)

// shipperOrder is the fixed request shape of the dropshipper order endpoint.
type shipperOrder struct {
	SKU          string `json:"sku"`
	Sub1         string `json:"sub1"`
	Sub2         string `json:"sub2"`
	Sub3         string `json:"sub3"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Telephone    string `json:"telephone"`
	EmailID      string `json:"email_id"`
	Pincode      string `json:"pincode"`
	Address      string `json:"address"`
	Address1     string `json:"address_1"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Payment      string `json:"payment"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// Fallback holds geolocation-derived values used when the shipping address
// leaves city/state/pincode blank.
type Fallback struct {
	City     string
	Pincode  string
	Province string
}

type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit maps the validated order onto the partner shape and posts it once.
// Only line_items[0] is read; multi-item orders are not supported downstream.
// Returns ok=false for any non-200 status (body still returned for logging)
// or transport error (no body available). No retry, no idempotency key.
func (c *Client) Submit(ctx context.Context, order *orders.Order, fallback Fallback) (bool, string, error) {
	item := order.LineItems[0]
	addr := order.ShippingAddress

	payload := shipperOrder{
		SKU:          item.SKU,
		Sub1:         order.ID.String(),
		FirstName:    order.Customer.FirstName,
		LastName:     order.Customer.LastName,
		Telephone:    order.Customer.Phone,
		EmailID:      order.Customer.Email,
		Pincode:      coalesce(addr.Zip.String(), fallback.Pincode),
		Address:      addr.Address1,
		Address1:     addr.Address2,
		ProductName:  item.Name,
		ProductPrice: item.Price.String(),
		Payment:      "COD",
		City:         coalesce(addr.City, fallback.City),
		State:        coalesce(addr.Province, fallback.Province),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return false, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return false, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, "", err
	}

	return resp.StatusCode == http.StatusOK, string(respBody), nil
}

func coalesce(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
