package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) userTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_users",
				mcp.WithDescription("List users of the folk workspace."),
				mcp.WithTitleAnnotation("List Users"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of users to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
			),
			Handler: t.ListUsers,
		},
		{
			Tool: mcp.NewTool("get_current_user",
				mcp.WithDescription("Fetch the user the configured API key belongs to."),
				mcp.WithTitleAnnotation("Get Current User"),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: t.GetCurrentUser,
		},
		{
			Tool: mcp.NewTool("get_user",
				mcp.WithDescription("Fetch a single user by ID."),
				mcp.WithTitleAnnotation("Get User"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("userId", mcp.Required(),
					mcp.Description("ID of the user to fetch.")),
			),
			Handler: t.GetUser,
		},
	}
}

func (t *Toolset) ListUsers(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/users"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetCurrentUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := t.client.Do(ctx, http.MethodGet, "/users/me", nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID, err := req.RequireString("userId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}
