package driven

import (
	"context"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// SearchProvider performs site-restricted documentation searches.
// Backed by the Serper search endpoint.
type SearchProvider interface {
	// Search returns up to num results for query, restricted to the given
	// documentation host. Results whose link host does not exactly equal
	// host are dropped, so fewer than num entries may come back.
	//
	// Fails with domain.ErrAPIKeyMissing before any network I/O when no
	// API key is configured. A non-2xx provider response fails with
	// *domain.ProviderError; any other transport or decoding failure is
	// wrapped and returned as-is.
	Search(ctx context.Context, query, host string, num int) ([]domain.SearchResult, error)
}
