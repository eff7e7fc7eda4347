package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// IPDetails is the subset of an ipinfo.io response used as address fallbacks.
type IPDetails struct {
	IP       string `json:"ip"`
	City     string `json:"city"`
	Region   string `json:"region"`
	Country  string `json:"country"`
	Loc      string `json:"loc"`
	Org      string `json:"org"`
	Postal   string `json:"postal"`
	Timezone string `json:"timezone"`
}

// Resolver looks up geolocation hints for an IP address.
type Resolver interface {
	Lookup(ctx context.Context, ip string) *IPDetails
}

type IPInfoClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewIPInfoClient(baseURL, token string) *IPInfoClient {
	return &IPInfoClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup fetches geolocation details for ip. Enrichment is strictly
// best-effort: any transport, status, or decode failure returns nil rather
// than an error, because a missing fallback must never abort the webhook.
func (c *IPInfoClient) Lookup(ctx context.Context, ip string) *IPDetails {
	if ip == "" {
		return nil
	}

	endpoint := fmt.Sprintf("%s/%s/json?token=%s", c.baseURL, url.PathEscape(ip), url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("failed to build ipinfo request")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("ipinfo lookup failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("ip", ip).Msg("ipinfo returned non-200")
		return nil
	}

	var details IPDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("failed to decode ipinfo response")
		return nil
	}

	return &details
}
