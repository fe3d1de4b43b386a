// Package yahoo implements quote.Source on top of Yahoo Finance via
// piquette/finance-go, covering equities, indices, futures, forex
// pairs, treasury yields and crypto with one symbol namespace.
package yahoo

import (
	"context"
	"fmt"

	fq "github.com/piquette/finance-go/quote"

	"github.com/finboard/finboard/quote"
)

type Source struct{}

var _ quote.Source = (*Source)(nil)

func New() *Source {
	return &Source{}
}

// The upstream client has no context support; the engine's per-fetch
// timeout bounds these calls from the outside.

func (s *Source) CurrentPrice(_ context.Context, symbol string) (float64, error) {
	q, err := fq.Get(symbol)
	if err != nil {
		return 0, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil {
		return 0, fmt.Errorf("yahoo quote %s: no data", symbol)
	}
	return q.RegularMarketPrice, nil
}

func (s *Source) PreviousClose(_ context.Context, symbol string) (float64, bool, error) {
	q, err := fq.Get(symbol)
	if err != nil {
		return 0, false, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPreviousClose == 0 {
		return 0, false, nil
	}
	return q.RegularMarketPreviousClose, true, nil
}
