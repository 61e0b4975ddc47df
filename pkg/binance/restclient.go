package binance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pricetable/internal/market"
)

// ErrUnexpectedStatus is returned for a non-2xx snapshot response.
var ErrUnexpectedStatus = errors.New("binance: unexpected status")

type RESTClient struct {
	baseURL    string
	path       string
	httpClient *http.Client
}

func NewRESTClient(baseURL, path string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    baseURL,
		path:       path,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch requests the full price snapshot once and returns the quotes listed in
// remap, renamed to their target symbols.
func (c *RESTClient) Fetch(ctx context.Context, remap market.SymbolRemap) ([]market.TickerQuote, error) {
	quotes, err := c.GetTickerPrices(ctx)
	if err != nil {
		return nil, err
	}
	return RemapQuotes(quotes, remap), nil
}

// GetTickerPrices fetches the price of every symbol listed on the exchange.
func (c *RESTClient) GetTickerPrices(ctx context.Context) ([]market.TickerQuote, error) {
	endpoint := c.baseURL + c.path

	// Construct the GET request with context for timeout/cancel support
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Execute the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	// Accumulate the whole body before parsing
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	// Check HTTP status code
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
	}

	quotes, err := ParsePriceList(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return quotes, nil
}
