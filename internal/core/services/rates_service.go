package services

import (
	"context"
	"sync"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/finanzas-app/finanzas_backend/internal/integrations/ecb"
	"github.com/shopspring/decimal"
)

// rateCacheTTL bounds how stale served rates can get. The upstream feed only
// updates once per business day, so an hour is comfortably fresh.
const rateCacheTTL = time.Hour

type ratesService struct {
	BaseService
	client *ecb.Client

	mu        sync.Mutex
	cached    map[string]decimal.Decimal
	fetchedAt time.Time
}

// NewRatesService creates the exchange rates service backed by the ECB feed.
func NewRatesService(client *ecb.Client) portssvc.RatesSvcFacade {
	return &ratesService{client: client}
}

var _ portssvc.RatesSvcFacade = (*ratesService)(nil)

func (s *ratesService) LatestRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.fetchedAt) < rateCacheTTL {
		return s.cached, nil
	}

	rates, err := s.client.FetchRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch reference rates")
		if s.cached != nil {
			// Serve the stale copy rather than failing the request.
			return s.cached, nil
		}
		return nil, err
	}

	s.cached = rates
	s.fetchedAt = time.Now()
	s.LogInfo(ctx, "Reference rates refreshed", "currencies", len(rates))
	return rates, nil
}
