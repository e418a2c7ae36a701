package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrRateUnavailable = errors.New("rate source unavailable")
)

// RateSource resolves a conversion rate between two ISO 4217 currency codes.
// Implementations must respect context cancellation; a lookup that cannot
// complete fails with ErrRateUnavailable and is never retried here.
type RateSource interface {
	Rate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// HTTPSource fetches rates from an external rate API. The API returns a JSON
// document of the form {"base": "EUR", "rates": {"USD": 1.1, ...}}.
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPSource(baseURL string, timeout time.Duration, logger *zap.Logger) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func (s *HTTPSource) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	endpoint := fmt.Sprintf("%s/latest?base=%s&symbols=%s",
		s.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Rate lookup failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	case resp.StatusCode != http.StatusOK:
		return decimal.Zero, fmt.Errorf("%w: status %d", ErrRateUnavailable, resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}

	rate, ok := body.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, to)
	}

	return decimal.NewFromFloat(rate), nil
}

// StaticSource serves rates from a fixed in-memory table, keyed "FROM/TO".
// Used for seeding and local development without a rate API.
type StaticSource struct {
	rates map[string]decimal.Decimal
}

func NewStaticSource(rates map[string]decimal.Decimal) *StaticSource {
	return &StaticSource{rates: rates}
}

func (s *StaticSource) Rate(_ context.Context, from, to string) (decimal.Decimal, error) {
	rate, ok := s.rates[from+"/"+to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, from)
	}
	return rate, nil
}
