package coinbase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pricetable/internal/market"
	"pricetable/internal/memorystore"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// ErrNoProducts is returned when Collect is called with an empty product set.
var ErrNoProducts = errors.New("coinbase: no products to subscribe")

// closeGrace bounds how long we wait to send the close frame on success.
const closeGrace = time.Second

// WSClient collects one ticker per product from the Coinbase websocket feed.
type WSClient struct {
	url    string
	dialer *websocket.Dialer
	logger *zap.Logger
}

// NewWSClient creates a websocket client for the given feed URL.
// handshakeTimeout bounds only the opening handshake; zero keeps the dialer default.
func NewWSClient(url string, handshakeTimeout time.Duration, logger *zap.Logger) *WSClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	dialer := *websocket.DefaultDialer
	if handshakeTimeout > 0 {
		dialer.HandshakeTimeout = handshakeTimeout
	}

	return &WSClient{
		url:    url,
		dialer: &dialer,
		logger: logger,
	}
}

// session holds the per-call state of one streaming connection.
type session struct {
	state  State
	conn   *websocket.Conn
	store  *memorystore.QuoteStore
	logger *zap.Logger
}

func (s *session) setState(st State) {
	s.state = st
	s.logger.Debug("stream state", zap.String("state", st.String()))
}

// Collect opens one connection, subscribes to the ticker channel for productIDs
// and reads frames until every product has reported at least once. A product
// reported more than once keeps its latest price. The connection is closed
// before Collect returns, on success and on error.
//
// There is no collection timeout: Collect only gives up on a transport error
// or when ctx is cancelled.
func (c *WSClient) Collect(ctx context.Context, productIDs []string) ([]market.TickerQuote, error) {
	products := uniqueProducts(productIDs)
	if len(products) == 0 {
		return nil, ErrNoProducts
	}

	s := &session{
		store:  memorystore.NewQuoteStore(),
		logger: c.logger.With(zap.String("url", c.url)),
	}
	s.setState(StateConnecting)

	// Attempt to connect to the WebSocket server
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.logger.Error("Failed to connect to WebSocket", zap.String("url", c.url),
			zap.String("state", s.state.String()), zap.Error(err))
		s.setState(StateClosed)
		return nil, fmt.Errorf("dial %s: %w", c.url, err)
	}
	s.conn = conn
	defer func() {
		_ = conn.Close()
		s.setState(StateClosed)
	}()

	// Unblock the read loop if the caller gives up
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	// Send subscription message
	if err := conn.WriteJSON(NewSubscribeRequest(products)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	s.setState(StateSubscribed)

	if err := c.listen(ctx, s, products); err != nil {
		return nil, err
	}

	s.logger.Info("collected tickers", zap.Int("count", s.store.Len()))
	c.closeGracefully(conn)

	return s.store.Quotes(), nil
}

// listen processes frames one at a time until the store covers products.
func (c *WSClient) listen(ctx context.Context, s *session, products []string) error {
	s.setState(StateCollecting)

	wanted := make(map[string]bool, len(products))
	for _, id := range products {
		wanted[id] = true
	}

	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logger.Error("WebSocket read error", zap.Error(err),
				zap.String("state", s.state.String()),
				zap.Strings("missing", s.store.Missing(products)))
			return fmt.Errorf("read frame: %w", err)
		}

		quote, ok := ParseTickerFrame(msg)
		if !ok || !wanted[quote.Symbol] {
			s.logger.Debug("frame ignored", zap.Int("bytes", len(msg)))
			continue
		}

		s.store.Put(quote)
		if s.store.Covers(products) {
			return nil
		}
	}
}

func (c *WSClient) closeGracefully(conn *websocket.Conn) {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace)); err != nil {
		c.logger.Debug("failed to send close frame", zap.Error(err))
	}
}
