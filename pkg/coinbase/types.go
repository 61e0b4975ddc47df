package coinbase

// SubscribeRequest is the single subscription message sent after connecting.
type SubscribeRequest struct {
	Type       string   `json:"type"`        // always "subscribe"
	ProductIDs []string `json:"product_ids"` // e.g. ["BTC-GBP", "ETH-GBP"]
	Channels   []string `json:"channels"`    // e.g. ["ticker"]
}

// Keys of a ticker event frame.
const (
	keyType      = "type"
	keyProductID = "product_id"
	keyPrice     = "price"
)
