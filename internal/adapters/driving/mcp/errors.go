// Package mcp provides an MCP (Model Context Protocol) server adapter for
// doclens. It exposes the get_documentation tool so AI assistants like
// Claude can search and read LlamaIndex and LangChain documentation.
package mcp

import "errors"

// ErrMissingDocumentationService is returned when the documentation service is not provided.
var ErrMissingDocumentationService = errors.New("mcp: documentation service is required")
