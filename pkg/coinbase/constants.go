package coinbase

// Message types and channels used on the Coinbase websocket feed.
const (
	TypeSubscribe = "subscribe"
	TypeTicker    = "ticker"

	ChannelTicker = "ticker"
)

// State is the lifecycle stage of a streaming session.
type State int

const (
	StateConnecting State = iota
	StateSubscribed
	StateCollecting
	StateClosed
)

var stateNames = map[State]string{
	StateConnecting: "connecting",
	StateSubscribed: "subscribed",
	StateCollecting: "collecting",
	StateClosed:     "closed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
