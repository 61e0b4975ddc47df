package coinbase

import (
	"encoding/json"

	"pricetable/internal/market"
)

// NewSubscribeRequest builds a ticker subscription for the given products.
func NewSubscribeRequest(productIDs []string) SubscribeRequest {
	return SubscribeRequest{
		Type:       TypeSubscribe,
		ProductIDs: productIDs,
		Channels:   []string{ChannelTicker},
	}
}

// ParseTickerFrame validates a raw text frame as a ticker event.
// It returns false for anything else: heartbeats, subscription acks,
// malformed JSON or a ticker with non-string fields.
// Keys are matched exactly, including case.
func ParseTickerFrame(msg []byte) (market.TickerQuote, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil {
		return market.TickerQuote{}, false
	}

	typ, ok := stringField(fields, keyType)
	if !ok || typ != TypeTicker {
		return market.TickerQuote{}, false
	}
	productID, ok := stringField(fields, keyProductID)
	if !ok {
		return market.TickerQuote{}, false
	}
	price, ok := stringField(fields, keyPrice)
	if !ok {
		return market.TickerQuote{}, false
	}
	return market.TickerQuote{Symbol: productID, Price: price}, true
}

// stringField returns fields[key] if it is present and a JSON string.
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

// uniqueProducts drops duplicate product ids, keeping first-seen order.
func uniqueProducts(productIDs []string) []string {
	seen := make(map[string]bool, len(productIDs))
	out := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
