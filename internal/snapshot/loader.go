package snapshot

import (
	"context"

	"pricetable/internal/market"

	"go.uber.org/zap"
)

// Fetcher returns the quotes named by remap from a one-shot price snapshot.
type Fetcher interface {
	Fetch(ctx context.Context, remap market.SymbolRemap) ([]market.TickerQuote, error)
}

// PriceLoader binds a snapshot fetcher to its fixed remap table.
type PriceLoader struct {
	Remap   market.SymbolRemap
	Fetcher Fetcher
	Logger  *zap.Logger
}

// LoadPrices fetches the snapshot once and returns the remapped quotes.
func (l *PriceLoader) LoadPrices(ctx context.Context) ([]market.TickerQuote, error) {
	quotes, err := l.Fetcher.Fetch(ctx, l.Remap)
	if err != nil {
		l.Logger.Error("failed to load snapshot prices", zap.Error(err))
		return nil, err
	}
	l.Logger.Info("loaded snapshot prices",
		zap.Int("count", len(quotes)),
		zap.Int("requested", len(l.Remap)))

	return quotes, nil
}
