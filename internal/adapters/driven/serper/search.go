package serper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.SearchProvider = (*Client)(nil)

// Defaults for provider entries with missing fields.
const (
	noTitle   = "No title"
	noSnippet = "No snippet available"
)

// searchRequest is the Serper /search request format.
type searchRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// organicEntry is one entry of the Serper "organic" result array.
// Title and snippet are pointers so the defaults apply only when the
// provider omits a field; an explicitly empty value passes through.
type organicEntry struct {
	Title   *string `json:"title"`
	Link    string  `json:"link"`
	Snippet *string `json:"snippet"`
}

// searchResponse is the Serper /search response format.
type searchResponse struct {
	Organic []organicEntry `json:"organic"`
}

// Search queries the Serper search endpoint restricted to host via a
// site filter and returns the results whose link host exactly equals
// host. Fails fast with domain.ErrAPIKeyMissing before any network I/O
// when no key is configured.
func (c *Client) Search(
	ctx context.Context, query, host string, num int,
) ([]domain.SearchResult, error) {
	apiKey := c.currentAPIKey()
	if apiKey == "" {
		return nil, domain.ErrAPIKeyMissing
	}

	// Callers clamp already; clamp again so a misbehaving caller cannot
	// push an out-of-range count to the provider.
	num = domain.ClampResults(num)

	body, err := json.Marshal(searchRequest{
		Q:   fmt.Sprintf("(%s) AND (site:%s)", query, host),
		Num: num,
	})
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	status, respBody, err := c.post(ctx, c.searchURL, apiKey, body)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, &domain.ProviderError{StatusCode: status, Body: string(respBody)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	return filterResults(parsed.Organic, host), nil
}

// filterResults keeps entries whose link host exactly equals host and
// maps them to domain results. Exact equality (not substring, not
// subdomain) guards against provider results leaking from off-domain
// pages despite the site filter.
func filterResults(entries []organicEntry, host string) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(entries))
	for _, entry := range entries {
		parsed, err := url.Parse(entry.Link)
		if err != nil || parsed.Host != host {
			logger.Debug("Dropping off-domain result: %s", entry.Link)
			continue
		}

		title := noTitle
		if entry.Title != nil {
			title = *entry.Title
		}
		snippet := noSnippet
		if entry.Snippet != nil {
			snippet = *entry.Snippet
		}

		results = append(results, domain.SearchResult{
			Title:   title,
			Link:    entry.Link,
			Snippet: snippet,
		})
	}
	return results
}
