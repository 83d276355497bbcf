package driven

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// PageScraper extracts the textual content of a single page.
// Backed by the Serper scrape endpoint.
type PageScraper interface {
	// Scrape fetches and cleans the content of url. It never returns an
	// error: every failure mode (HTTP error, timeout, decode failure) is
	// carried as a failed domain.ScrapeResult so one bad page cannot
	// abort a batch. Successful content is truncated to
	// domain.MaxContentLength.
	Scrape(ctx context.Context, url string) domain.ScrapeResult
}
