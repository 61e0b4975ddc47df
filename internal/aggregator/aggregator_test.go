package aggregator

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"pricetable/internal/market"
)

type fakeStream struct {
	quotes []market.TickerQuote
	err    error
	block  bool // wait for cancellation instead of returning
}

func (f *fakeStream) Collect(ctx context.Context, _ []string) ([]market.TickerQuote, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.quotes, f.err
}

type fakeSnapshot struct {
	quotes []market.TickerQuote
	err    error
}

func (f *fakeSnapshot) LoadPrices(context.Context) ([]market.TickerQuote, error) {
	return f.quotes, f.err
}

func rowStrings(rows []market.AggregatedRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.String())
	}
	return out
}

// go test -v --run TestRunMergesAndSorts
func TestRunMergesAndSorts(t *testing.T) {
	agg := &Aggregator{
		StreamName:   "Coinbase",
		Products:     []string{"BTC-GBP"},
		Stream:       &fakeStream{quotes: []market.TickerQuote{{Symbol: "BTC-GBP", Price: "50000.00"}}},
		SnapshotName: "Binance",
		Snapshot:     &fakeSnapshot{quotes: []market.TickerQuote{{Symbol: "ADA-BTC", Price: "0.55"}}},
	}

	rows, err := agg.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Binance,ADA-BTC,0.55", "Coinbase,BTC-GBP,50000.00"}
	if got := rowStrings(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// go test -v --run TestRunSnapshotFailureCancelsStream
func TestRunSnapshotFailureCancelsStream(t *testing.T) {
	boom := errors.New("snapshot down")
	agg := &Aggregator{
		StreamName:   "Coinbase",
		Products:     []string{"BTC-GBP"},
		Stream:       &fakeStream{block: true},
		SnapshotName: "Binance",
		Snapshot:     &fakeSnapshot{err: boom},
	}

	done := make(chan struct{})
	var (
		rows []market.AggregatedRow
		err  error
	)
	go func() {
		rows, err = agg.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not fail fast")
	}

	if !errors.Is(err, boom) {
		t.Errorf("expected snapshot error, got %v", err)
	}
	if rows != nil {
		t.Errorf("expected no rows, got %v", rows)
	}
}

// go test -v --run TestRunStreamFailure
func TestRunStreamFailure(t *testing.T) {
	boom := errors.New("connection reset")
	agg := &Aggregator{
		StreamName:   "Coinbase",
		Stream:       &fakeStream{err: boom},
		SnapshotName: "Binance",
		Snapshot:     &fakeSnapshot{quotes: []market.TickerQuote{{Symbol: "ADA-BTC", Price: "0.55"}}},
	}

	if _, err := agg.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected stream error, got %v", err)
	}
}

// go test -v --run TestMergeSortsByFormattedRow
func TestMergeSortsByFormattedRow(t *testing.T) {
	rows := Merge(
		[]market.AggregatedRow{
			{Exchange: "Coinbase", Symbol: "ETH-GBP", Price: "3000"},
			{Exchange: "Coinbase", Symbol: "BTC-GBP", Price: "50000"},
		},
		[]market.AggregatedRow{
			{Exchange: "Binance", Symbol: "DOT-BTC", Price: "4.56"},
			{Exchange: "Binance", Symbol: "ADA-BTC", Price: "1.23"},
		},
	)

	want := []string{
		"Binance,ADA-BTC,1.23",
		"Binance,DOT-BTC,4.56",
		"Coinbase,BTC-GBP,50000",
		"Coinbase,ETH-GBP,3000",
	}
	if got := rowStrings(rows); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
