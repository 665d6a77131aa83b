package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/folkapp/folk-mcp/internal/config"
	"github.com/folkapp/folk-mcp/internal/server"
)

func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the folk tools over the MCP stdio transport",
		Long: `Serve reads configuration, registers every non-filtered tool and speaks
the Model Context Protocol on stdin/stdout until the client disconnects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		// Missing credential is fatal before any tool registration.
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	log.Info().Int("tools", srv.RegisteredTools()).Msg("Serving MCP over stdio")

	if err := srv.ServeStdio(); err != nil {
		log.Error().Err(err).Msg("MCP stdio server failed")
		return err
	}

	log.Info().Msg("folk MCP server stopped")
	return nil
}
