package finnhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Finnhub REST base path.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// maxErrorBody bounds how much of an error response body is kept for the
// error message.
const maxErrorBody = 4 << 10

// HTTPClient describes the HTTP client the API client performs requests
// with. Tests substitute it for a stub.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a Finnhub REST API client. It holds only the immutable API key
// and base URL; there is no shared state between calls. Authentication is
// always the token query parameter, never a header — that is the provider's
// protocol contract. Each call is a single attempt: no retries, no backoff.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests and proxies).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Finnhub client with the given API token.
func New(token string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger.With("component", "finnhub_client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpstreamError reports a failed upstream call: either a non-success HTTP
// status (StatusCode set, Body holding the response text when present) or a
// transport failure (StatusCode zero, Err set).
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("finnhub %s: %v", e.Endpoint, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("finnhub %s: %s: %s", e.Endpoint, e.Status, e.Body)
	}
	return fmt.Sprintf("finnhub %s: %s", e.Endpoint, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Transport reports whether the failure happened before any HTTP status was
// received.
func (e *UpstreamError) Transport() bool { return e.StatusCode == 0 }

// get performs one authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("token", c.token)

	requestURL := c.baseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("upstream_transport_error", "endpoint", endpoint, "error", err)
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		c.logger.Warn("upstream_status_error",
			"endpoint", endpoint,
			"status", res.StatusCode,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return &UpstreamError{
			Endpoint:   endpoint,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	c.logger.Debug("upstream_request",
		"endpoint", endpoint,
		"status", res.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// EarningsCalendar fetches the earnings calendar for a date window, scoped
// to one symbol when symbol is non-empty.
func (c *Client) EarningsCalendar(ctx context.Context, from, to, symbol string) (*EarningsCalendarResponse, error) {
	params := url.Values{}
	params.Set("from", from)
	params.Set("to", to)
	if symbol != "" {
		params.Set("symbol", symbol)
	}
	var resp EarningsCalendarResponse
	if err := c.get(ctx, "/calendar/earnings", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quote fetches the real-time quote for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*RawQuote, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	var resp RawQuote
	if err := c.get(ctx, "/quote", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompanyNews fetches news articles for a symbol within a date window.
func (c *Client) CompanyNews(ctx context.Context, symbol, from, to string) ([]RawNews, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("from", from)
	params.Set("to", to)
	var resp []RawNews
	if err := c.get(ctx, "/company-news", params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Profile fetches the company profile for one symbol.
func (c *Client) Profile(ctx context.Context, symbol string) (*RawProfile, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	var resp RawProfile
	if err := c.get(ctx, "/stock/profile2", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptionChain fetches the option chain for a symbol, filtered to one
// expiration date when expirationDate is non-empty.
func (c *Client) OptionChain(ctx context.Context, symbol, expirationDate string) (*OptionChainResponse, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	if expirationDate != "" {
		params.Set("expirationDate", expirationDate)
	}
	var resp OptionChainResponse
	if err := c.get(ctx, "/stock/option-chain", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IsUpstream reports whether err is an upstream failure and returns it.
func IsUpstream(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
