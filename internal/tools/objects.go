package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

// Deals are folk's built-in custom object type. All five tools below are
// parameterized on objectType so the same operations address any
// group-scoped custom object; the path is /groups/{groupId}/{objectType}.
const defaultObjectType = "deal"

func (t *Toolset) objectTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_deals",
				mcp.WithDescription("List the deals (or another custom object type) of a group."),
				mcp.WithTitleAnnotation("List Deals"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group the objects live in.")),
				mcp.WithString("objectType",
					mcp.Description("Custom object type to list."),
					mcp.DefaultString(defaultObjectType)),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of objects to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
			),
			Handler: t.ListObjects,
		},
		{
			Tool: mcp.NewTool("get_deal",
				mcp.WithDescription("Fetch a single deal (or another custom object) by ID."),
				mcp.WithTitleAnnotation("Get Deal"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group the object lives in.")),
				mcp.WithString("objectId", mcp.Required(),
					mcp.Description("ID of the object to fetch.")),
				mcp.WithString("objectType",
					mcp.Description("Custom object type."),
					mcp.DefaultString(defaultObjectType)),
			),
			Handler: t.GetObject,
		},
		{
			Tool: mcp.NewTool("create_deal",
				mcp.WithDescription("Create a deal (or another custom object) in a group."),
				mcp.WithTitleAnnotation("Create Deal"),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group to create the object in.")),
				mcp.WithString("objectType",
					mcp.Description("Custom object type to create."),
					mcp.DefaultString(defaultObjectType)),
				mcp.WithObject("values", mcp.Required(),
					mcp.Description("Field values of the new object, keyed by custom field name.")),
			),
			Handler: t.CreateObject,
		},
		{
			Tool: mcp.NewTool("update_deal",
				mcp.WithDescription("Update a deal (or another custom object). Only the supplied field values are changed."),
				mcp.WithTitleAnnotation("Update Deal"),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group the object lives in.")),
				mcp.WithString("objectId", mcp.Required(),
					mcp.Description("ID of the object to update.")),
				mcp.WithString("objectType",
					mcp.Description("Custom object type."),
					mcp.DefaultString(defaultObjectType)),
				mcp.WithObject("values", mcp.Required(),
					mcp.Description("Field values to change, keyed by custom field name.")),
			),
			Handler: t.UpdateObject,
		},
		{
			Tool: mcp.NewTool("delete_deal",
				mcp.WithDescription("Delete a deal (or another custom object) by ID."),
				mcp.WithTitleAnnotation("Delete Deal"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("groupId", mcp.Required(),
					mcp.Description("ID of the group the object lives in.")),
				mcp.WithString("objectId", mcp.Required(),
					mcp.Description("ID of the object to delete.")),
				mcp.WithString("objectType",
					mcp.Description("Custom object type."),
					mcp.DefaultString(defaultObjectType)),
			),
			Handler: t.DeleteObject,
		},
	}
}

func objectPath(groupID, objectType string, segments ...string) string {
	path := "/groups/" + url.PathEscape(groupID) + "/" + url.PathEscape(objectType)
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

func (t *Toolset) ListObjects(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectType := req.GetString("objectType", defaultObjectType)

	args := req.GetArguments()
	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"])

	raw, err := t.client.Do(ctx, http.MethodGet, objectPath(groupID, objectType)+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetObject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectID, err := req.RequireString("objectId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectType := req.GetString("objectType", defaultObjectType)

	raw, err := t.client.Do(ctx, http.MethodGet, objectPath(groupID, objectType, objectID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreateObject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectType := req.GetString("objectType", defaultObjectType)

	values, ok := req.GetArguments()["values"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("values must be an object of field values"), nil
	}

	raw, err := t.client.Do(ctx, http.MethodPost, objectPath(groupID, objectType), values)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdateObject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectID, err := req.RequireString("objectId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectType := req.GetString("objectType", defaultObjectType)

	values, ok := req.GetArguments()["values"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("values must be an object of field values"), nil
	}

	raw, err := t.client.Do(ctx, http.MethodPatch, objectPath(groupID, objectType, objectID), values)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeleteObject(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	groupID, err := req.RequireString("groupId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectID, err := req.RequireString("objectId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectType := req.GetString("objectType", defaultObjectType)

	if _, err := t.client.Do(ctx, http.MethodDelete, objectPath(groupID, objectType, objectID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s %s", objectType, objectID)), nil
}
