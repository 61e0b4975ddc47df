package binance

// Keys of one snapshot record, e.g. {"symbol":"ADABTC","price":"0.00001234"}.
const (
	keySymbol = "symbol"
	keyPrice  = "price"
)
