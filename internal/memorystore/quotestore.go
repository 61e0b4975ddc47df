package memorystore

import "pricetable/internal/market"

// QuoteStore accumulates the last seen quote per symbol for one streaming session.
// It is owned by a single read loop and is not safe for concurrent use.
type QuoteStore struct {
	order  []string // first-report order
	quotes map[string]market.TickerQuote
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: make(map[string]market.TickerQuote),
	}
}

// Put stores q, overwriting any earlier quote for the same symbol.
func (s *QuoteStore) Put(q market.TickerQuote) {
	if _, ok := s.quotes[q.Symbol]; !ok {
		s.order = append(s.order, q.Symbol)
	}
	s.quotes[q.Symbol] = q
}

// Covers reports whether every symbol has at least one stored quote.
func (s *QuoteStore) Covers(symbols []string) bool {
	for _, sym := range symbols {
		if _, ok := s.quotes[sym]; !ok {
			return false
		}
	}
	return true
}

// Missing returns the symbols that have not reported yet.
func (s *QuoteStore) Missing(symbols []string) []string {
	var out []string
	for _, sym := range symbols {
		if _, ok := s.quotes[sym]; !ok {
			out = append(out, sym)
		}
	}
	return out
}

// Len returns the number of distinct symbols stored.
func (s *QuoteStore) Len() int {
	return len(s.quotes)
}

// Quotes returns a copy of the stored quotes in first-report order.
func (s *QuoteStore) Quotes() []market.TickerQuote {
	out := make([]market.TickerQuote, 0, len(s.order))
	for _, sym := range s.order {
		out = append(out, s.quotes[sym])
	}
	return out
}
