package market

import "testing"

// go test -v --run TestSymbolRemapLookup
func TestSymbolRemapLookup(t *testing.T) {
	remap := SymbolRemap{
		{Source: "ADABTC", Target: "ADA-BTC"},
		{Source: "DOTBTC", Target: "DOT-BTC"},
		{Source: "ADABTC", Target: "ADA/BTC"},
	}

	target, ok := remap.Lookup("ADABTC")
	if !ok || target != "ADA-BTC" {
		t.Errorf("expected first match ADA-BTC, got %q (found=%v)", target, ok)
	}

	if _, ok := remap.Lookup("XYZ"); ok {
		t.Error("expected no match for XYZ")
	}
}

// go test -v --run TestTagQuotes
func TestTagQuotes(t *testing.T) {
	rows := TagQuotes("Binance", []TickerQuote{{Symbol: "ADA-BTC", Price: "0.55"}})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if got := rows[0].String(); got != "Binance,ADA-BTC,0.55" {
		t.Errorf("unexpected row: %s", got)
	}
}
