package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doclens/doclens-cli/internal/core/domain"
)

// GetDocumentationInput is the input schema for the get_documentation tool.
type GetDocumentationInput struct {
	Query      string `json:"query" jsonschema:"search query for documentation (e.g. 'vector store', 'chat models', 'retrieval')"`
	Library    string `json:"library" jsonschema:"the library to search: 'llamaindex' or 'langchain'"`
	MaxResults *int   `json:"max_results,omitempty" jsonschema:"maximum number of documentation pages to retrieve (1-2, default 2)"`
}

// GetDocumentationOutput is the output schema for the get_documentation tool.
type GetDocumentationOutput struct {
	Documentation string `json:"documentation"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "get_documentation",
		Description: "Search for and retrieve documentation from the LlamaIndex or " +
			"LangChain documentation sites, returning the content of the top matching pages",
	}, s.handleGetDocumentation)
}

// handleGetDocumentation handles the get_documentation tool invocation.
// It never returns a non-nil error: invalid input and upstream failures
// are all carried as text in the result, so the transport layer never
// sees a tool-level failure.
func (s *Server) handleGetDocumentation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentationInput,
) (*mcp.CallToolResult, GetDocumentationOutput, error) {
	// A nil pointer means the caller omitted the field; any explicit
	// value, including zero, passes through for the service to clamp.
	maxResults := domain.MaxResults
	if input.MaxResults != nil {
		maxResults = *input.MaxResults
	}

	report := s.ports.Documentation.GetDocumentation(ctx, input.Query, input.Library, maxResults)

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: report},
		},
	}

	return result, GetDocumentationOutput{Documentation: report}, nil
}
