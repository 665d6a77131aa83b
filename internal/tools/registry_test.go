package tools

import (
	"context"
	"net/http"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findDefinition(t *testing.T, ts *Toolset, name string) Definition {
	t.Helper()
	for _, d := range ts.Definitions() {
		if d.Tool.Name == name {
			return d
		}
	}
	t.Fatalf("tool %s not in roster", name)
	return Definition{}
}

func TestDefinitions_Roster(t *testing.T) {
	defs := NewToolset(nil).Definitions()

	assert.Len(t, defs, 37)

	seen := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		assert.NotEmpty(t, def.Tool.Name)
		assert.NotEmpty(t, def.Tool.Description)
		require.NotNil(t, def.Handler, "%s has no handler", def.Tool.Name)

		_, dup := seen[def.Tool.Name]
		assert.False(t, dup, "duplicate tool name %s", def.Tool.Name)
		seen[def.Tool.Name] = struct{}{}
	}
}

func TestDefinitions_Annotations(t *testing.T) {
	readOnly := func(tool mcp.Tool) bool {
		return tool.Annotations.ReadOnlyHint != nil && *tool.Annotations.ReadOnlyHint
	}
	destructive := func(tool mcp.Tool) bool {
		return tool.Annotations.DestructiveHint != nil && *tool.Annotations.DestructiveHint
	}

	for _, def := range NewToolset(nil).Definitions() {
		switch {
		case def.Tool.Name == "list_people", def.Tool.Name == "get_person", def.Tool.Name == "get_current_user":
			assert.True(t, readOnly(def.Tool), "%s should be read-only", def.Tool.Name)
		case def.Tool.Name == "delete_person", def.Tool.Name == "delete_webhook", def.Tool.Name == "delete_deal":
			assert.False(t, readOnly(def.Tool), "%s should not be read-only", def.Tool.Name)
			assert.True(t, destructive(def.Tool), "%s should be destructive", def.Tool.Name)
		case def.Tool.Name == "create_person", def.Tool.Name == "update_note":
			assert.False(t, readOnly(def.Tool), "%s should not be read-only", def.Tool.Name)
			assert.False(t, destructive(def.Tool), "%s should not be destructive", def.Tool.Name)
		}
	}
}

func TestRegister_AppliesFilter(t *testing.T) {
	defs := NewToolset(nil).Definitions()

	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(false))
	registered, err := Register(s, defs, ParseFilter("delete_person,delete_company"))
	require.NoError(t, err)
	assert.Equal(t, len(defs)-2, registered)
}

func TestRegister_NoFilter(t *testing.T) {
	defs := NewToolset(nil).Definitions()

	s := mcpserver.NewMCPServer("test", "0.0.0", mcpserver.WithToolCapabilities(false))
	registered, err := Register(s, defs, ParseFilter(""))
	require.NoError(t, err)
	assert.Equal(t, len(defs), registered)
}

func TestWithValidation_RejectsBeforeNetwork(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{
			name: "missing required argument",
			tool: "get_person",
			args: map[string]any{},
		},
		{
			name: "limit above maximum",
			tool: "list_people",
			args: map[string]any{"limit": float64(500)},
		},
		{
			name: "value outside enum",
			tool: "get_group_custom_fields",
			args: map[string]any{"groupId": "g1", "entityType": "deal"},
		},
		{
			name: "wrong argument type",
			tool: "list_people",
			args: map[string]any{"limit": "fifty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newUpstream(t, http.StatusOK, `{}`)
			def := findDefinition(t, u.toolset(), tt.tool)

			handler, err := withValidation(def.Tool, def.Handler)
			require.NoError(t, err)

			res, err := handler(context.Background(), callRequest(tt.tool, tt.args))
			require.NoError(t, err)
			require.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), "invalid arguments for "+tt.tool)
			assert.Empty(t, u.requests, "validation failures must not reach the network")
		})
	}
}

func TestWithValidation_PassesConformingArguments(t *testing.T) {
	u := newUpstream(t, http.StatusOK, `{"data":[]}`)
	def := findDefinition(t, u.toolset(), "list_people")

	handler, err := withValidation(def.Tool, def.Handler)
	require.NoError(t, err)

	res, err := handler(context.Background(), callRequest("list_people", map[string]any{
		"limit": float64(10),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Len(t, u.requests, 1)
}

func TestWithValidation_CompilesEveryTool(t *testing.T) {
	for _, def := range NewToolset(nil).Definitions() {
		_, err := withValidation(def.Tool, def.Handler)
		assert.NoError(t, err, "schema for %s must compile", def.Tool.Name)
	}
}

func TestInstrument_RecoversPanic(t *testing.T) {
	handler := instrument("exploding_tool", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		panic("kaboom")
	})

	res, err := handler(context.Background(), callRequest("exploding_tool", nil))
	require.NoError(t, err)
	require.True(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "exploding_tool")
	assert.Contains(t, text, "kaboom")
}

func TestInstrument_PassesThrough(t *testing.T) {
	handler := instrument("quiet_tool", func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("ok"), nil
	})

	res, err := handler(context.Background(), callRequest("quiet_tool", nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "ok", resultText(t, res))
}
