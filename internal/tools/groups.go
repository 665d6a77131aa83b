package tools

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) groupTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_groups",
				mcp.WithDescription("List groups in the folk workspace."),
				mcp.WithTitleAnnotation("List Groups"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of groups to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
			),
			Handler: t.ListGroups,
		},
		{
			Tool: mcp.NewTool("get_group",
				mcp.WithDescription("Fetch a single group by ID."),
				mcp.WithTitleAnnotation("Get Group"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group to fetch.")),
			),
			Handler: t.GetGroup,
		},
		{
			Tool: mcp.NewTool("get_group_custom_fields",
				mcp.WithDescription("List the custom field definitions a group declares for people or companies."),
				mcp.WithTitleAnnotation("Get Group Custom Fields"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group.")),
				mcp.WithString("entityType", mcp.Required(),
					mcp.Description("Entity type the custom fields apply to."),
					mcp.Enum("person", "company")),
			),
			Handler: t.GetGroupCustomFields,
		},
	}
}

func (t *Toolset) ListGroups(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/groups"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetGroup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/groups/"+url.PathEscape(groupID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetGroupCustomFields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	entityType, err := req.RequireString("entityType")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	path := "/groups/" + url.PathEscape(groupID) + "/custom-fields/" + url.PathEscape(entityType)
	raw, err := t.client.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}
