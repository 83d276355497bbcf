package serper

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default configuration values.
const (
	DefaultSearchURL = "https://google.serper.dev/search"
	DefaultScrapeURL = "https://scrape.serper.dev"
	DefaultTimeout   = 30 * time.Second

	// Conservative defaults well below Serper's actual limits.
	DefaultRequestsPerSecond = 5.0
	DefaultBurstSize         = 5
)

// Config holds configuration for the Serper client.
type Config struct {
	// APIKey is the Serper API key. May be empty at construction; a
	// search then fails fast until SetAPIKey provides one.
	APIKey string

	// SearchURL overrides the search endpoint (default: google.serper.dev/search).
	SearchURL string

	// ScrapeURL overrides the scrape endpoint (default: scrape.serper.dev).
	ScrapeURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond is the sustained rate limit across both endpoints.
	RequestsPerSecond float64

	// BurstSize is the maximum burst size.
	BurstSize int
}

// Client is the shared HTTP client for the Serper search and scrape
// endpoints. Safe for concurrent use.
type Client struct {
	httpClient *http.Client
	searchURL  string
	scrapeURL  string
	limiter    *rate.Limiter

	mu     sync.RWMutex
	apiKey string
}

// NewClient creates a new Serper client.
func NewClient(cfg Config) *Client {
	if cfg.SearchURL == "" {
		cfg.SearchURL = DefaultSearchURL
	}
	if cfg.ScrapeURL == "" {
		cfg.ScrapeURL = DefaultScrapeURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if cfg.BurstSize == 0 {
		cfg.BurstSize = DefaultBurstSize
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		searchURL: cfg.SearchURL,
		scrapeURL: cfg.ScrapeURL,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		apiKey:    cfg.APIKey,
	}
}

// SetAPIKey replaces the API key. Called by the config watcher when the
// key changes under a long-running server.
func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// currentAPIKey returns the API key for the next request.
func (c *Client) currentAPIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

// post issues one rate-limited JSON POST with the Serper auth header
// and returns the status code and response body.
func (c *Client) post(ctx context.Context, url, apiKey string, body []byte) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("X-API-KEY", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	return resp.StatusCode, respBody, nil
}
