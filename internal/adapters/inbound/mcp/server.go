package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/langgate/langgate/internal/domain"
)

// NewLanggateMCPServer creates an MCP server exposing the policy check to AI
// coding assistants. projectPath is the scan root; opts selects the config
// file and preset exactly like the CLI flags do.
func NewLanggateMCPServer(projectPath string, opts domain.LoadOptions) *server.MCPServer {
	s := server.NewMCPServer(
		"langgate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, opts)
	registerResources(s, projectPath, opts)

	return s
}
