package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/folkapp/folk-mcp/internal/folk"
)

// Definition pairs a declarative tool descriptor with its handler. The full
// table is built once by Toolset.Definitions and filtered at registration
// time, which keeps the registry enumerable independent of the filtering
// mechanism.
type Definition struct {
	Tool    mcp.Tool
	Handler mcpserver.ToolHandlerFunc
}

// Toolset holds the folk API client shared by every tool handler. There is
// no other state: invocations are mutually independent.
type Toolset struct {
	client *folk.Client
}

func NewToolset(client *folk.Client) *Toolset {
	return &Toolset{client: client}
}

// Definitions returns all tool definitions in stable domain order.
func (t *Toolset) Definitions() []Definition {
	var defs []Definition
	defs = append(defs, t.peopleTools()...)
	defs = append(defs, t.companyTools()...)
	defs = append(defs, t.groupTools()...)
	defs = append(defs, t.noteTools()...)
	defs = append(defs, t.reminderTools()...)
	defs = append(defs, t.userTools()...)
	defs = append(defs, t.interactionTools()...)
	defs = append(defs, t.webhookTools()...)
	defs = append(defs, t.objectTools()...)
	return defs
}

// Register adds every non-filtered definition to the MCP server. Each
// handler is wrapped with argument validation against its declared input
// schema and with panic recovery, so no code path can escape the
// {isError, content} envelope. Returns the number of tools registered.
func Register(s *mcpserver.MCPServer, defs []Definition, filter Filter) (int, error) {
	registered := 0
	for _, def := range defs {
		if filter.IsFiltered(def.Tool.Name) {
			log.Debug().Str("tool", def.Tool.Name).Msg("Tool filtered out, skipping registration")
			continue
		}

		handler, err := withValidation(def.Tool, def.Handler)
		if err != nil {
			return registered, fmt.Errorf("failed to compile input schema for %s: %w", def.Tool.Name, err)
		}

		s.AddTool(def.Tool, instrument(def.Tool.Name, handler))
		registered++
	}
	return registered, nil
}

// instrument wraps a handler with panic recovery and per-invocation logging.
func instrument(name string, next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("tool", name).Interface("panic", r).Msg("Tool handler panicked")
				result = mcp.NewToolResultError(fmt.Sprintf("internal error in %s: %v", name, r))
				err = nil
			}

			isError := err != nil || (result != nil && result.IsError)
			log.Debug().
				Str("tool", name).
				Dur("duration", time.Since(start)).
				Bool("is_error", isError).
				Msg("Tool invocation completed")
		}()

		return next(ctx, req)
	}
}
