package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/langgate/langgate/internal/domain"
)

const policyURI = "langgate://policy"

// registerResources registers all langgate MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, opts domain.LoadOptions) {
	s.AddResource(
		mcplib.NewResource(
			policyURI,
			"Language Policy",
			mcplib.WithResourceDescription("Effective language policy: preset merged with the project config"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePolicyResource(projectPath, opts),
	)
}

func handlePolicyResource(projectPath string, opts domain.LoadOptions) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := loadConfig(projectPath, opts)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling policy: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      policyURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
