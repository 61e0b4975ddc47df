package memorystore

import (
	"testing"

	"pricetable/internal/market"
)

// go test -v --run TestQuoteStoreLastWriteWins
func TestQuoteStoreLastWriteWins(t *testing.T) {
	store := NewQuoteStore()

	store.Put(market.TickerQuote{Symbol: "BTC-GBP", Price: "50000.00"})
	store.Put(market.TickerQuote{Symbol: "ETH-GBP", Price: "3000.00"})
	store.Put(market.TickerQuote{Symbol: "BTC-GBP", Price: "50001.00"})

	if store.Len() != 2 {
		t.Fatalf("expected 2 symbols, got %d", store.Len())
	}

	quotes := store.Quotes()
	if len(quotes) != 2 || quotes[0].Symbol != "BTC-GBP" || quotes[1].Symbol != "ETH-GBP" {
		t.Fatalf("unexpected quotes order: %v", quotes)
	}
	if quotes[0].Price != "50001.00" {
		t.Errorf("expected later price to win, got %s", quotes[0].Price)
	}
}

// go test -v --run TestQuoteStoreCovers
func TestQuoteStoreCovers(t *testing.T) {
	store := NewQuoteStore()
	want := []string{"BTC-GBP", "ETH-GBP"}

	if store.Covers(want) {
		t.Fatal("empty store must not cover symbols")
	}

	store.Put(market.TickerQuote{Symbol: "BTC-GBP", Price: "1"})
	store.Put(market.TickerQuote{Symbol: "XRP-USD", Price: "2"})
	if store.Covers(want) {
		t.Fatal("store should still be missing ETH-GBP")
	}
	if missing := store.Missing(want); len(missing) != 1 || missing[0] != "ETH-GBP" {
		t.Errorf("unexpected missing symbols: %v", missing)
	}

	store.Put(market.TickerQuote{Symbol: "ETH-GBP", Price: "3"})
	if !store.Covers(want) {
		t.Fatal("expected store to cover all symbols")
	}
}
