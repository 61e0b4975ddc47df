package binance

import (
	"encoding/json"
	"errors"
	"fmt"

	"pricetable/internal/market"
)

var (
	// ErrInvalidResponse means the snapshot body is JSON but not an array of
	// {symbol, price} string records.
	ErrInvalidResponse = errors.New("binance: invalid response")

	// ErrMalformedBody means the snapshot body is not JSON at all.
	ErrMalformedBody = errors.New("binance: malformed response body")
)

// ParsePriceList validates a snapshot body. Every element must pass the shape
// guard; a single bad element rejects the whole response.
func ParsePriceList(body []byte) ([]market.TickerQuote, error) {
	if !json.Valid(body) {
		return nil, ErrMalformedBody
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected array: %v", ErrInvalidResponse, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected array, got null", ErrInvalidResponse)
	}

	out := make([]market.TickerQuote, 0, len(raw))
	for i, elem := range raw {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(elem, &fields); err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrInvalidResponse, i, err)
		}
		symbol, ok := stringField(fields, keySymbol)
		if !ok {
			return nil, fmt.Errorf("%w: element %d: missing or non-string symbol", ErrInvalidResponse, i)
		}
		price, ok := stringField(fields, keyPrice)
		if !ok {
			return nil, fmt.Errorf("%w: element %d: missing or non-string price", ErrInvalidResponse, i)
		}
		out = append(out, market.TickerQuote{Symbol: symbol, Price: price})
	}
	return out, nil
}

// stringField returns fields[key] if it is present and a JSON string.
// Keys are matched exactly, including case.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil || v == nil {
		return "", false
	}
	return *v, true
}

// RemapQuotes keeps quotes whose symbol is a remap source and renames them to
// the matching target. Unknown symbols are dropped. Response order is kept.
func RemapQuotes(quotes []market.TickerQuote, remap market.SymbolRemap) []market.TickerQuote {
	out := make([]market.TickerQuote, 0, len(remap))
	for _, q := range quotes {
		target, ok := remap.Lookup(q.Symbol)
		if !ok {
			continue
		}
		out = append(out, market.TickerQuote{Symbol: target, Price: q.Price})
	}
	return out
}
