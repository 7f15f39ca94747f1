// Package idx talks to the IDX (Indonesia Stock Exchange) website: the
// suspension announcement feed, the announcement PDFs, and the
// long-suspension spreadsheet page.
package idx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the exchange site root, prefixed to every document
// reference the feed returns.
const DefaultBaseURL = "https://www.idx.co.id"

const requestTimeout = 30 * time.Second

// Client fetches IDX resources with a shared rate limiter so scraping
// stays polite across feed, PDF and spreadsheet requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client for the given site root. proxyURL may be
// empty; when set, all requests are tunneled through it.
func NewClient(baseURL, proxyURL string, logger *slog.Logger) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	return &Client{
		httpClient: &http.Client{Transport: transport, Timeout: requestTimeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second), 2),
		logger:     logger,
	}, nil
}

// BaseURL returns the site root used to build document URLs.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// get performs a rate-limited GET and returns the response body.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}
	return body, nil
}
