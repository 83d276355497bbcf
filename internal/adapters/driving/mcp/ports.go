package mcp

import (
	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
)

// Ports aggregates everything the MCP server needs from the core.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Documentation retrieves formatted documentation.
	Documentation driving.DocumentationService

	// Domains is the fixed library-to-host table, used by the
	// libraries resource.
	Domains domain.DomainTable
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Documentation == nil {
		return ErrMissingDocumentationService
	}
	return nil
}
