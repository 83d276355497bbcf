package domain

// Result-count bounds. The Serper plan used here caps useful organic
// results at two per query, so callers clamp into this window.
const (
	// MinResults is the smallest number of pages a request may fetch.
	MinResults = 1

	// MaxResults is the largest number of pages a request may fetch.
	MaxResults = 2
)

// ClampResults bounds a requested result count to [MinResults, MaxResults].
func ClampResults(n int) int {
	if n < MinResults {
		return MinResults
	}
	if n > MaxResults {
		return MaxResults
	}
	return n
}

// SearchResult represents a single documentation search hit.
// Every retained result's link host exactly equals the configured
// documentation host for the requested library.
type SearchResult struct {
	// Title is the page title ("No title" when the provider omits it).
	Title string

	// Link is the page URL.
	Link string

	// Snippet is the provider's result summary ("No snippet available"
	// when omitted).
	Snippet string
}
