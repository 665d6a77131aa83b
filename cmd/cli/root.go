package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "folk-mcp",
		Short: "MCP server for the folk CRM API",
		Long: `folk-mcp exposes the folk CRM REST API as MCP tools over stdio so that
AI agents can read and write people, companies, groups, notes, reminders,
interactions, webhooks and deals through a uniform tool interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// A local .env is convenient when the server is launched by an MCP
	// client that does not forward the parent environment.
	_ = godotenv.Load()

	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewToolsCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
