package domain

import "strings"

// Library identifies a supported documentation corpus.
type Library string

const (
	// LibraryLlamaIndex is the LlamaIndex documentation site.
	LibraryLlamaIndex Library = "llamaindex"

	// LibraryLangChain is the LangChain (Python) documentation site.
	LibraryLangChain Library = "langchain"
)

// DomainTable maps library identifiers to the documentation host
// searches are restricted to. The table is built once at startup and
// passed into adapters; it is never mutated afterwards.
type DomainTable map[Library]string

// DefaultDomains returns the fixed library-to-host table.
func DefaultDomains() DomainTable {
	return DomainTable{
		LibraryLlamaIndex: "docs.llamaindex.ai",
		LibraryLangChain:  "python.langchain.com",
	}
}

// Libraries returns the valid identifiers in a stable order.
func (t DomainTable) Libraries() []Library {
	// Fixed order keeps help text and error messages deterministic.
	ordered := []Library{LibraryLlamaIndex, LibraryLangChain}
	result := make([]Library, 0, len(ordered))
	for _, lib := range ordered {
		if _, ok := t[lib]; ok {
			result = append(result, lib)
		}
	}
	return result
}

// ParseLibrary validates a raw library identifier against the table.
// Matching is exact: no partial or fuzzy lookup.
func (t DomainTable) ParseLibrary(raw string) (Library, error) {
	lib := Library(raw)
	if _, ok := t[lib]; !ok {
		return "", ErrInvalidLibrary
	}
	return lib, nil
}

// Host returns the documentation host for a library.
func (t DomainTable) Host(lib Library) string {
	return t[lib]
}

// DisplayName returns the capitalised library name used in report headers.
func (l Library) DisplayName() string {
	s := string(l)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
