package cli

import (
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	mcpadapter "github.com/langgate/langgate/internal/adapters/inbound/mcp"
	"github.com/langgate/langgate/internal/domain"
)

func newMCPCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the langgate MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(v))
	return cmd
}

func newMCPServeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start langgate MCP server (stdio)",
		Long:  "Start the langgate MCP server using stdio transport, so AI coding assistants can check the policy before and after creating files.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := filepath.Abs(v.GetString("path"))
			if err != nil {
				return err
			}
			s := mcpadapter.NewLanggateMCPServer(projectPath, domain.LoadOptions{
				File:   v.GetString("config"),
				Preset: v.GetString("preset"),
			})
			return server.ServeStdio(s)
		},
	}
}
