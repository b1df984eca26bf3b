package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// RatesSvcFacade exposes daily EUR reference exchange rates.
type RatesSvcFacade interface {
	// LatestRates fetches the most recent reference rates keyed by ISO
	// currency code, quoted against EUR.
	LatestRates(ctx context.Context) (map[string]decimal.Decimal, error)
}
