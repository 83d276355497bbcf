package driving

import "context"

// DocumentationService retrieves documentation for external actors.
type DocumentationService interface {
	// GetDocumentation searches the requested library's documentation
	// site for query, fetches the matching pages, and returns one
	// formatted text document.
	//
	// It always returns a string and never fails: invalid input and
	// upstream errors alike are described in the returned text. This is
	// the tool's external contract - the transport layer never sees an
	// error from it.
	GetDocumentation(ctx context.Context, query, library string, maxResults int) string
}
