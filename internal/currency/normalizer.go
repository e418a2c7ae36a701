package currency

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a textual monetary amount into a decimal. A value that
// does not parse to a finite number fails with ErrInvalidAmount; conversion
// must never run on an unparsed value.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// Normalizer converts amounts into the canonical currency. It is stateless
// apart from the injected rate source.
type Normalizer struct {
	canonical string
	rates     RateSource
	logger    *zap.Logger
}

func NewNormalizer(canonical string, rates RateSource, logger *zap.Logger) *Normalizer {
	return &Normalizer{
		canonical: strings.ToUpper(canonical),
		rates:     rates,
		logger:    logger,
	}
}

// Canonical returns the reference currency code all amounts are stored in.
func (n *Normalizer) Canonical() string { return n.canonical }

// Normalize converts amount from sourceCurrency into the canonical currency,
// rounded to the canonical currency's fraction digits. When sourceCurrency
// already is the canonical currency the amount passes through untouched.
func (n *Normalizer) Normalize(ctx context.Context, amount decimal.Decimal, sourceCurrency string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %s", ErrInvalidAmount, amount)
	}

	source := strings.ToUpper(sourceCurrency)
	if source == "" {
		source = n.canonical
	}

	if source == n.canonical {
		return amount, nil
	}

	if money.GetCurrency(source) == nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownCurrency, source)
	}

	rate, err := n.rates.Rate(ctx, source, n.canonical)
	if err != nil {
		return decimal.Zero, err
	}

	fraction := 2
	if cur := money.GetCurrency(n.canonical); cur != nil {
		fraction = cur.Fraction
	}

	return amount.Mul(rate).Round(int32(fraction)), nil
}
