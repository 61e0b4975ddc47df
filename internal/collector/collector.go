package collector

import (
	"context"
	"fmt"
	"io"

	"pricetable/config"
	"pricetable/internal/aggregator"
	"pricetable/internal/output"
	"pricetable/internal/snapshot"
	"pricetable/pkg/binance"
	"pricetable/pkg/coinbase"

	"go.uber.org/zap"
)

// Run collects prices from both exchanges and writes the merged table to w.
// Nothing is written unless both sources succeed.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, w io.Writer) error {
	// Streaming source
	wsClient := coinbase.NewWSClient(cfg.Coinbase.WS.URL, cfg.Coinbase.WS.HandshakeTimeout,
		logger.With(zap.String("exchange", cfg.Coinbase.Name)))

	// Snapshot source
	restClient := binance.NewRESTClient(cfg.Binance.REST.BaseURL, cfg.Binance.REST.Path, cfg.Binance.REST.Timeout)
	loader := &snapshot.PriceLoader{
		Remap:   cfg.Binance.Remap,
		Fetcher: restClient,
		Logger:  logger.With(zap.String("exchange", cfg.Binance.Name)),
	}

	agg := &aggregator.Aggregator{
		StreamName:   cfg.Coinbase.Name,
		Products:     cfg.Coinbase.Products,
		Stream:       wsClient,
		SnapshotName: cfg.Binance.Name,
		Snapshot:     loader,
		Logger:       logger,
	}

	rows, err := agg.Run(ctx)
	if err != nil {
		return fmt.Errorf("aggregate prices: %w", err)
	}

	if err := output.WriteCSV(w, rows); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("price table written", zap.Int("rows", len(rows)))

	return nil
}
