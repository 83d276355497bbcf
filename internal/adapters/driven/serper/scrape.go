package serper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.PageScraper = (*Client)(nil)

// noContent is returned when the provider supplies neither a markdown
// nor a text rendering of the page.
const noContent = "No content available"

// scrapeRequest is the Serper scrape request format.
type scrapeRequest struct {
	URL             string `json:"url"`
	IncludeMarkdown bool   `json:"includeMarkdown"`
}

// scrapeResponse is the Serper scrape response format. Pointers
// distinguish an absent field from an empty one, matching the
// markdown-then-text preference order.
type scrapeResponse struct {
	Markdown *string `json:"markdown"`
	Text     *string `json:"text"`
}

// Scrape fetches the cleaned content of pageURL through the Serper
// scrape endpoint, preferring the markdown rendering. It never returns
// an error: every failure becomes a failed ScrapeResult so one bad page
// cannot abort a batch.
func (c *Client) Scrape(ctx context.Context, pageURL string) domain.ScrapeResult {
	body, err := json.Marshal(scrapeRequest{
		URL:             pageURL,
		IncludeMarkdown: true,
	})
	if err != nil {
		return domain.ScrapeFailure(fmt.Sprintf("Error scraping %s: %s", pageURL, err))
	}

	status, respBody, err := c.post(ctx, c.scrapeURL, c.currentAPIKey(), body)
	if err != nil {
		return domain.ScrapeFailure(fmt.Sprintf("Error scraping %s: %s", pageURL, err))
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return domain.ScrapeFailure(fmt.Sprintf("Error scraping %s: HTTP %d", pageURL, status))
	}

	var parsed scrapeResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return domain.ScrapeFailure(fmt.Sprintf("Error scraping %s: %s", pageURL, err))
	}

	content := noContent
	switch {
	case parsed.Markdown != nil:
		content = *parsed.Markdown
	case parsed.Text != nil:
		content = *parsed.Text
	}

	return domain.ScrapeSuccess(content)
}
