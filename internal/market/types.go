package market

import "strings"

// TickerQuote is a single symbol's latest price as reported by an exchange.
// Price is kept exactly as received (e.g. "50000.00") to avoid precision loss.
type TickerQuote struct {
	Symbol string `json:"symbol"` // exchange-specific or caller-facing identifier, e.g. "BTC-GBP"
	Price  string `json:"price"`  // decimal value as a string
}

// RemapEntry translates one source exchange symbol into the caller's naming.
type RemapEntry struct {
	Source string `mapstructure:"source"` // e.g. "ADABTC"
	Target string `mapstructure:"target"` // e.g. "ADA-BTC"
}

// SymbolRemap is an ordered translation table. Lookup is by Source.
type SymbolRemap []RemapEntry

// Lookup returns the target symbol of the first entry whose Source matches.
func (r SymbolRemap) Lookup(source string) (string, bool) {
	for _, e := range r {
		if e.Source == source {
			return e.Target, true
		}
	}
	return "", false
}

// AggregatedRow is one line of the merged price table.
type AggregatedRow struct {
	Exchange string
	Symbol   string
	Price    string
}

// Fields returns the row in output column order.
func (r AggregatedRow) Fields() []string {
	return []string{r.Exchange, r.Symbol, r.Price}
}

// String formats the row as "<exchange>,<symbol>,<price>". It is also the sort key.
func (r AggregatedRow) String() string {
	return strings.Join(r.Fields(), ",")
}

// TagQuotes attaches an exchange name to every quote.
func TagQuotes(exchange string, quotes []TickerQuote) []AggregatedRow {
	rows := make([]AggregatedRow, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, AggregatedRow{
			Exchange: exchange,
			Symbol:   q.Symbol,
			Price:    q.Price,
		})
	}
	return rows
}
