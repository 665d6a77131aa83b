package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// withValidation compiles the tool's declared input schema once and rejects
// non-conforming arguments before the handler runs. Schema rejection is a
// local error: the wrapped handler is never called and no network request is
// attempted.
func withValidation(tool mcp.Tool, next mcpserver.ToolHandlerFunc) (mcpserver.ToolHandlerFunc, error) {
	schemaJSON, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	resource := tool.Name + ".schema.json"
	if err := compiler.AddResource(resource, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		if args == nil {
			args = map[string]any{}
		}

		if err := schema.Validate(any(args)); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments for %s: %v", tool.Name, err)), nil
		}

		return next(ctx, req)
	}, nil
}
