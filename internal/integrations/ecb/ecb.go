// Package ecb fetches the European Central Bank's daily reference exchange
// rates (the eurofxref-daily.xml feed). Rates are quoted against EUR.
package ecb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// DefaultFeedURL is the published location of the daily reference rates.
const DefaultFeedURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// Client fetches and parses the ECB daily rates feed.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates an ECB rates client. An empty url falls back to the
// published feed location.
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultFeedURL
	}
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchRates downloads the daily feed and returns rates keyed by ISO
// currency code.
func (c *Client) FetchRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return ParseRates(body)
}

// ParseRates extracts the currency/rate pairs from the feed XML. The feed
// nests two Cube levels under the root before the per-currency entries.
func ParseRates(raw []byte) (map[string]decimal.Decimal, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	entries := doc.FindElements("//Cube/Cube/Cube")
	if len(entries) == 0 {
		return nil, fmt.Errorf("no rate data found in feed")
	}

	rates := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		currency := e.SelectAttrValue("currency", "")
		rateText := e.SelectAttrValue("rate", "")
		if currency == "" || rateText == "" {
			continue
		}
		rate, err := decimal.NewFromString(rateText)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rate for %s: %w", currency, err)
		}
		rates[currency] = rate
	}
	return rates, nil
}
