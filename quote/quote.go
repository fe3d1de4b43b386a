package quote

import "context"

// Source returns market data for a single symbol. It is treated as a
// remote, rate-limited service: calls may be slow or fail, and the
// fetcher bounds them with a timeout.
type Source interface {
	CurrentPrice(ctx context.Context, symbol string) (float64, error)

	// PreviousClose returns the prior session's closing price.
	// ok=false means the source has no baseline for the symbol,
	// which is a valid answer, not an error.
	PreviousClose(ctx context.Context, symbol string) (price float64, ok bool, err error)
}

// Quote is the outcome of one fetch attempt. A nil field means "no
// data": both nil when the fetch failed or timed out, ChangePercent nil
// alone when no previous-close baseline is known for the symbol.
type Quote struct {
	Price         *float64
	ChangePercent *float64
}

func (q Quote) HasPrice() bool {
	return q.Price != nil
}

func (q Quote) HasChange() bool {
	return q.ChangePercent != nil
}
