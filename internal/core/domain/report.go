package domain

import (
	"fmt"
	"strings"
)

// ReportSection pairs one search result with its scraped content.
type ReportSection struct {
	// Result is the search hit this section renders.
	Result SearchResult

	// Content is the section body: scraped page text or an error line.
	Content string
}

// Report is the assembled documentation document for one request.
// It is built fresh per invocation and has no lifecycle beyond the
// single response.
type Report struct {
	// Query is the original search query.
	Query string

	// Library is the documentation corpus that was searched.
	Library Library

	// Sections are the rendered results in original search order.
	Sections []ReportSection
}

// completionMarker closes every successful report.
const completionMarker = "*Search completed successfully*"

// renderSection renders one result block: title, URL, snippet, content.
func renderSection(s ReportSection) string {
	return fmt.Sprintf("\n## %s\n**URL:** %s\n**Summary:** %s\n\n**Content:**\n%s\n",
		s.Result.Title, s.Result.Link, s.Result.Snippet, s.Content)
}

// Render produces the final report text: a header naming the query and
// library, the post-filter result count, one separator-prefixed section
// per result, and the trailing completion marker.
func (r Report) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Documentation Search Results for: \"%s\" in %s Documentation\n\n",
		r.Query, r.Library.DisplayName())
	fmt.Fprintf(&sb, "Found %d relevant documentation pages:\n\n", len(r.Sections))

	for _, section := range r.Sections {
		sb.WriteString("---")
		sb.WriteString(renderSection(section))
		sb.WriteString("\n")
	}

	sb.WriteString("\n---\n")
	sb.WriteString(completionMarker)
	sb.WriteString("\n")

	return sb.String()
}
