package cli

import (
	"context"
	"testing"

	configfile "github.com/doclens/doclens-cli/internal/adapters/driven/config/file"
	"github.com/doclens/doclens-cli/internal/core/domain"
)

// stubDocService implements driving.DocumentationService for CLI tests.
type stubDocService struct {
	response       string
	lastQuery      string
	lastLibrary    string
	lastMaxResults int
}

func (s *stubDocService) GetDocumentation(
	_ context.Context, query, library string, maxResults int,
) string {
	s.lastQuery = query
	s.lastLibrary = library
	s.lastMaxResults = maxResults
	return s.response
}

// setupTestServices injects stub services so commands run without real
// wiring. The returned cleanup restores the package state.
func setupTestServices(t *testing.T, stub *stubDocService) func() {
	t.Helper()

	store, err := configfile.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating test config store: %v", err)
	}

	configStore = store
	domainTable = domain.DefaultDomains()
	documentationService = stub

	return func() {
		configStore = nil
		domainTable = nil
		documentationService = nil
	}
}
