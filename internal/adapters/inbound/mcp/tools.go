package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/langgate/langgate/internal/adapters/outbound/config"
	"github.com/langgate/langgate/internal/adapters/outbound/gitinfo"
	"github.com/langgate/langgate/internal/adapters/outbound/scanner"
	"github.com/langgate/langgate/internal/application"
	"github.com/langgate/langgate/internal/domain"
)

// registerTools registers all langgate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, opts domain.LoadOptions) {
	// 1. langgate_check
	s.AddTool(
		mcplib.NewTool("langgate_check",
			mcplib.WithDescription("Scan the project against its language policy and return every violation as JSON"),
			mcplib.WithString("preset",
				mcplib.Description("Override the base preset (strict or permissive)"),
			),
		),
		handleCheck(projectPath, opts),
	)

	// 2. langgate_classify_path
	s.AddTool(
		mcplib.NewTool("langgate_classify_path",
			mcplib.WithDescription("Report which policy rules a file at the given path would violate, before creating it"),
			mcplib.WithString("path",
				mcplib.Required(),
				mcplib.Description("Path relative to the project root, e.g. src/render.wat"),
			),
		),
		handleClassifyPath(projectPath, opts),
	)

	// 3. langgate_validate
	s.AddTool(
		mcplib.NewTool("langgate_validate",
			mcplib.WithDescription("Check existing files against the per-file rules, e.g. after editing them. The core-language check is not applied."),
			mcplib.WithString("files", mcplib.Required(), mcplib.Description("Comma-separated file paths relative to project root")),
		),
		handleValidate(projectPath, opts),
	)
}

// classifyResult is the langgate_classify_path payload.
type classifyResult struct {
	Path       string             `json:"path"`
	Allowed    bool               `json:"allowed"`
	CoreFile   bool               `json:"core_file"`
	Violations []domain.Violation `json:"violations"`
}

func newCheckService() *application.CheckService {
	sc := scanner.New()
	return application.NewCheckService(sc, sc, gitinfo.New())
}

func loadConfig(projectPath string, opts domain.LoadOptions) (domain.ProjectConfig, error) {
	return config.New().Load(projectPath, opts)
}

func handleCheck(projectPath string, opts domain.LoadOptions) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		callOpts := opts
		if preset := request.GetString("preset", ""); preset != "" {
			callOpts.Preset = preset
		}

		cfg, err := loadConfig(projectPath, callOpts)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		result, err := newCheckService().Check(ctx, projectPath, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleClassifyPath(projectPath string, opts domain.LoadOptions) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		relPath, err := request.RequireString("path")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := loadConfig(projectPath, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		violations := newCheckService().ClassifyPath(cfg, relPath)
		if violations == nil {
			violations = []domain.Violation{}
		}
		return jsonResult(classifyResult{
			Path:       relPath,
			Allowed:    len(violations) == 0,
			CoreFile:   application.IsCoreFile(cfg, relPath),
			Violations: violations,
		})
	}
}

func handleValidate(projectPath string, opts domain.LoadOptions) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		filesStr, err := request.RequireString("files")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		files := splitCSV(filesStr)
		if len(files) == 0 {
			return errorResult("files must name at least one path"), nil
		}

		cfg, err := loadConfig(projectPath, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("loading config failed: %v", err)), nil
		}

		result, err := application.NewValidateService(scanner.New()).Validate(projectPath, files, cfg)
		if err != nil {
			return errorResult(fmt.Sprintf("validate failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
