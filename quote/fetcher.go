package quote

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// Fetcher retrieves a single instrument's quote from a Source, bounded
// by a per-fetch timeout, and derives percent change from the cached
// previous close.
type Fetcher struct {
	source  Source
	cache   *CloseCache
	timeout time.Duration
	log     logrus.FieldLogger
}

func NewFetcher(source Source, cache *CloseCache, timeout time.Duration, log logrus.FieldLogger) *Fetcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Fetcher{
		source:  source,
		cache:   cache,
		timeout: timeout,
		log:     log,
	}
}

// Fetch returns the quote for symbol. The whole operation, including a
// previous-close lookup on cache miss, must finish within the fetcher's
// timeout. Source errors and timeouts are logged and come back as the
// zero Quote; one bad instrument never fails its batch.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) Quote {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	type result struct {
		q   Quote
		err error
	}
	done := make(chan result, 1)
	go func() {
		q, err := f.fetch(ctx, symbol)
		done <- result{q: q, err: err}
	}()

	select {
	case <-ctx.Done():
		f.log.WithField("symbol", symbol).Warnf("fetch aborted: %v", ctx.Err())
		return Quote{}
	case r := <-done:
		if r.err != nil {
			f.log.WithField("symbol", symbol).Warnf("fetch failed: %v", r.err)
			return Quote{}
		}
		return r.q
	}
}

func (f *Fetcher) fetch(ctx context.Context, symbol string) (Quote, error) {
	price, err := f.source.CurrentPrice(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}

	prev, known, present := f.cache.Get(symbol)
	if !present {
		prev, known, err = f.source.PreviousClose(ctx, symbol)
		if err != nil {
			return Quote{}, err
		}
		f.cache.Put(symbol, prev, known)
	}

	q := Quote{Price: &price}
	// A zero previous close (some treasury symbols) cannot serve as a
	// baseline.
	if known && prev != 0 {
		change := round2((price - prev) / prev * 100)
		q.ChangePercent = &change
	}
	return q, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
