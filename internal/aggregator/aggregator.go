package aggregator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"pricetable/internal/market"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StreamCollector resolves once every product has reported a ticker.
type StreamCollector interface {
	Collect(ctx context.Context, productIDs []string) ([]market.TickerQuote, error)
}

// SnapshotLoader returns remapped quotes from a one-shot snapshot.
type SnapshotLoader interface {
	LoadPrices(ctx context.Context) ([]market.TickerQuote, error)
}

// Aggregator merges the streaming and snapshot sources into one sorted table.
type Aggregator struct {
	StreamName string
	Products   []string
	Stream     StreamCollector

	SnapshotName string
	Snapshot     SnapshotLoader

	Logger *zap.Logger
}

// Run fetches both sources concurrently. The first failure cancels the other
// source and is returned; no rows are produced unless both succeed.
func (a *Aggregator) Run(ctx context.Context) ([]market.AggregatedRow, error) {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var streamQuotes, snapshotQuotes []market.TickerQuote

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quotes, err := a.Stream.Collect(gctx, a.Products)
		if err != nil {
			return fmt.Errorf("%s stream: %w", a.StreamName, err)
		}
		streamQuotes = quotes
		return nil
	})
	g.Go(func() error {
		quotes, err := a.Snapshot.LoadPrices(gctx)
		if err != nil {
			return fmt.Errorf("%s snapshot: %w", a.SnapshotName, err)
		}
		snapshotQuotes = quotes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := Merge(
		market.TagQuotes(a.StreamName, streamQuotes),
		market.TagQuotes(a.SnapshotName, snapshotQuotes),
	)
	logger.Info("aggregated prices",
		zap.Int("stream", len(streamQuotes)),
		zap.Int("snapshot", len(snapshotQuotes)))

	return rows, nil
}

// Merge concatenates row sets and sorts them by their formatted line.
func Merge(sets ...[]market.AggregatedRow) []market.AggregatedRow {
	var rows []market.AggregatedRow
	for _, set := range sets {
		rows = append(rows, set...)
	}

	slices.SortStableFunc(rows, func(a, b market.AggregatedRow) int {
		return strings.Compare(a.String(), b.String())
	})
	return rows
}
