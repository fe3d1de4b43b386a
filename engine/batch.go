package engine

import (
	"context"
	"sync"

	"github.com/finboard/finboard/quote"
)

// FetchGroup fetches quotes for an ordered list of symbols in
// consecutive batches of at most batchSize. Fetches within a batch run
// concurrently; the next batch starts only once every fetch in the
// current one has completed or timed out. The result is index-aligned
// with symbols regardless of completion order.
func FetchGroup(ctx context.Context, f *quote.Fetcher, symbols []string, batchSize int) []quote.Quote {
	results := make([]quote.Quote, len(symbols))

	for start := 0; start < len(symbols); start += batchSize {
		end := start + batchSize
		if end > len(symbols) {
			end = len(symbols)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = f.Fetch(ctx, symbols[i])
			}()
		}
		wg.Wait()
	}

	return results
}
