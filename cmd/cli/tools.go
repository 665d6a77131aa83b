package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folkapp/folk-mcp/internal/config"
	"github.com/folkapp/folk-mcp/internal/tools"
)

func NewToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List every tool in the registry and its filtering status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd)
		},
	}
}

func runTools(cmd *cobra.Command) error {
	// The registry is a static table; no API key is needed to enumerate it.
	cfg := config.LoadLenient()
	filter := tools.ParseFilter(cfg.FilteredTools)

	defs := tools.NewToolset(nil).Definitions()

	out := cmd.OutOrStdout()
	for _, def := range defs {
		status := "registered"
		if filter.IsFiltered(def.Tool.Name) {
			status = "filtered"
		}

		kind := "mutating"
		if def.Tool.Annotations.ReadOnlyHint != nil && *def.Tool.Annotations.ReadOnlyHint {
			kind = "read-only"
		}

		fmt.Fprintf(out, "%-28s %-10s %s\n", def.Tool.Name, kind, status)
	}

	fmt.Fprintf(out, "\n%d tools total\n", len(defs))
	return nil
}
