package server

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/folkapp/folk-mcp/internal/config"
	"github.com/folkapp/folk-mcp/internal/folk"
	"github.com/folkapp/folk-mcp/internal/tools"
	"github.com/folkapp/folk-mcp/internal/version"
)

// Server binds the folk toolset to an MCP server instance.
type Server struct {
	mcp        *mcpserver.MCPServer
	registered int
}

// New builds the gateway client from configuration, assembles the tool
// table, filters it, and registers the survivors on a fresh MCP server.
func New(cfg *config.Config) (*Server, error) {
	client := folk.NewClient(folk.ClientConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
	})

	toolset := tools.NewToolset(client)
	defs := toolset.Definitions()
	filter := tools.ParseFilter(cfg.FilteredTools)

	s := mcpserver.NewMCPServer("folk-mcp", version.Version,
		mcpserver.WithToolCapabilities(false),
	)

	registered, err := tools.Register(s, defs, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	log.Info().
		Int("registered", registered).
		Int("filtered", len(defs)-registered).
		Str("base_url", cfg.BaseURL).
		Msg("folk MCP server ready")

	return &Server{mcp: s, registered: registered}, nil
}

// RegisteredTools returns how many tools survived filtering.
func (s *Server) RegisteredTools() int {
	return s.registered
}

// ServeStdio serves the MCP protocol over stdin/stdout until the client
// disconnects or the process is signalled.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}
