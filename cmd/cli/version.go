package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folkapp/folk-mcp/internal/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "folk-mcp %s\n", info.Version)
			if info.GitCommit != "" {
				fmt.Fprintf(out, "  commit: %s\n", info.GitCommit)
			}
			if info.BuildDate != "" {
				fmt.Fprintf(out, "  built:  %s\n", info.BuildDate)
			}
			fmt.Fprintf(out, "  go:     %s (%s)\n", info.GoVersion, info.Platform)
		},
	}
}
