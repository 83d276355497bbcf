package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for doclens resources.
const uriScheme = "doclens://"

// libraryInfo describes one supported documentation corpus.
type libraryInfo struct {
	Library string `json:"library"`
	Host    string `json:"host"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the libraries this server can search.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "libraries",
		Name:        "libraries",
		Description: "Documentation libraries this server can search, with their hosts",
		MIMEType:    "application/json",
	}, s.handleLibrariesResource)
}

// handleLibrariesResource returns the fixed domain table as JSON.
func (s *Server) handleLibrariesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	libraries := make([]libraryInfo, 0, len(s.ports.Domains))
	for _, lib := range s.ports.Domains.Libraries() {
		libraries = append(libraries, libraryInfo{
			Library: string(lib),
			Host:    s.ports.Domains.Host(lib),
		})
	}

	data, err := json.MarshalIndent(libraries, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
