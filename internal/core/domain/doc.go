// Package domain defines the core business entities for doclens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Library: A supported documentation corpus (LlamaIndex, LangChain)
//   - SearchResult: One provider search hit with title/link/snippet
//   - ScrapeResult: The outcome of fetching one page (content or failure)
//   - Report: The assembled documentation document returned to the caller
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
