package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/doclens/doclens-cli/internal/core/domain"
	"github.com/doclens/doclens-cli/internal/core/ports/driven"
	"github.com/doclens/doclens-cli/internal/core/ports/driving"
	"github.com/doclens/doclens-cli/internal/logger"
)

// Ensure DocumentationService implements the interface.
var _ driving.DocumentationService = (*DocumentationService)(nil)

// User-facing messages for input problems. These are returned as normal
// results, never as errors: the tool contract is "always a string".
const (
	msgEmptyQuery     = "Error: Query cannot be empty"
	msgInvalidLibrary = "Error: Invalid library. Choose either 'llamaindex' or 'langchain'"
)

// DocumentationService orchestrates one documentation request: validate
// input, search the provider once, scrape every retained result
// concurrently, and assemble the report.
type DocumentationService struct {
	search  driven.SearchProvider
	scraper driven.PageScraper
	domains domain.DomainTable
}

// NewDocumentationService creates a new documentation service.
// The domain table is fixed at construction and never mutated.
func NewDocumentationService(
	search driven.SearchProvider,
	scraper driven.PageScraper,
	domains domain.DomainTable,
) *DocumentationService {
	return &DocumentationService{
		search:  search,
		scraper: scraper,
		domains: domains,
	}
}

// GetDocumentation searches the requested library's documentation site,
// scrapes the top results, and returns one formatted document. All
// failure modes terminate in the returned string.
func (s *DocumentationService) GetDocumentation(
	ctx context.Context, query, library string, maxResults int,
) string {
	reqID := uuid.New().String()[:8]
	logger.Section("Documentation Request " + reqID)

	maxResults = domain.ClampResults(maxResults)
	logger.Debug("[%s] Effective max results: %d", reqID, maxResults)

	if strings.TrimSpace(query) == "" {
		logger.Debug("[%s] Empty query, rejecting before any network call", reqID)
		return msgEmptyQuery
	}

	lib, err := s.domains.ParseLibrary(library)
	if err != nil {
		logger.Debug("[%s] Unknown library %q, rejecting before any network call", reqID, library)
		return msgInvalidLibrary
	}

	logger.Info("[%s] Searching for: %s in %s documentation", reqID, query, library)

	results, err := s.search.Search(ctx, query, s.domains.Host(lib), maxResults)
	if err != nil {
		logger.Warn("[%s] Search failed: %v", reqID, err)
		return fmt.Sprintf("Error retrieving documentation: %s", err)
	}

	if len(results) == 0 {
		logger.Info("[%s] No results retained after host filtering", reqID)
		return fmt.Sprintf("No documentation found for query: '%s' in %s documentation",
			query, library)
	}

	logger.Info("[%s] Found %d results, scraping content...", reqID, len(results))
	contents := s.scrapeAll(ctx, reqID, results)

	sections := make([]domain.ReportSection, len(results))
	for i := range results {
		sections[i] = domain.ReportSection{
			Result:  results[i],
			Content: contents[i],
		}
	}

	report := domain.Report{
		Query:    query,
		Library:  lib,
		Sections: sections,
	}

	logger.Debug("[%s] Report assembled with %d sections", reqID, len(sections))
	return report.Render()
}

// scrapeAll fetches every result page concurrently and returns the
// section bodies in the original result order. The scraper already
// converts its own failures into display strings; the per-slot recover
// additionally guards against an unexpected panic so one bad page can
// never take down the batch or the request.
func (s *DocumentationService) scrapeAll(
	ctx context.Context, reqID string, results []domain.SearchResult,
) []string {
	contents := make([]string, len(results))

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(slot int, link string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Warn("[%s] Scrape of %s panicked: %v", reqID, link, r)
					contents[slot] = fmt.Sprintf("Error scraping content: %v", r)
				}
			}()

			logger.Debug("[%s] Scraping %s", reqID, link)
			contents[slot] = s.scraper.Scrape(ctx, link).Render()
		}(i, results[i].Link)
	}
	wg.Wait()

	return contents
}
