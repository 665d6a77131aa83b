package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) peopleTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_people",
				mcp.WithDescription("List people in the folk workspace, with optional search and cursor-based pagination."),
				mcp.WithTitleAnnotation("List People"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of people to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
				mcp.WithString("search",
					mcp.Description("Free-text search across names and email addresses.")),
			),
			Handler: t.ListPeople,
		},
		{
			Tool: mcp.NewTool("get_person",
				mcp.WithDescription("Fetch a single person by ID."),
				mcp.WithTitleAnnotation("Get Person"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("personId", mcp.Required(),
					mcp.Description("ID of the person to fetch.")),
			),
			Handler: t.GetPerson,
		},
		{
			Tool: mcp.NewTool("create_person",
				mcp.WithDescription("Create a new person in the folk workspace."),
				mcp.WithTitleAnnotation("Create Person"),
				mcp.WithString("firstName", mcp.Required(),
					mcp.Description("First name of the person.")),
				mcp.WithString("lastName",
					mcp.Description("Last name of the person.")),
				mcp.WithString("email",
					mcp.Description("Primary email address."),
					mcp.Pattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)),
				mcp.WithString("jobTitle",
					mcp.Description("Job title of the person.")),
				mcp.WithString("description",
					mcp.Description("Free-form description.")),
				mcp.WithArray("groups",
					mcp.Description("IDs of the groups the person belongs to."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.CreatePerson,
		},
		{
			Tool: mcp.NewTool("update_person",
				mcp.WithDescription("Update a person. Only the supplied fields are changed; omitted fields keep their current value."),
				mcp.WithTitleAnnotation("Update Person"),
				mcp.WithString("personId", mcp.Required(),
					mcp.Description("ID of the person to update.")),
				mcp.WithString("firstName",
					mcp.Description("First name of the person.")),
				mcp.WithString("lastName",
					mcp.Description("Last name of the person.")),
				mcp.WithString("email",
					mcp.Description("Primary email address."),
					mcp.Pattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)),
				mcp.WithString("jobTitle",
					mcp.Description("Job title of the person.")),
				mcp.WithString("description",
					mcp.Description("Free-form description.")),
				mcp.WithArray("groups",
					mcp.Description("IDs of the groups the person belongs to."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.UpdatePerson,
		},
		{
			Tool: mcp.NewTool("delete_person",
				mcp.WithDescription("Delete a person by ID."),
				mcp.WithTitleAnnotation("Delete Person"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("personId", mcp.Required(),
					mcp.Description("ID of the person to delete.")),
			),
			Handler: t.DeletePerson,
		},
	}
}

func (t *Toolset) ListPeople(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"]).
		Add("search", args["search"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/people"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetPerson(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("personId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/people/"+url.PathEscape(personID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreatePerson(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("firstName"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	body := folk.PickFields(args, "firstName", "lastName", "email", "jobTitle", "description")
	if groups, ok := args["groups"]; ok {
		body["groups"] = folk.GroupRefs(groups)
	}

	raw, err := t.client.Do(ctx, http.MethodPost, "/people", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdatePerson(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("personId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	body := folk.PickFields(args, "firstName", "lastName", "email", "jobTitle", "description")
	if groups, ok := args["groups"]; ok {
		body["groups"] = folk.GroupRefs(groups)
	}

	raw, err := t.client.Do(ctx, http.MethodPatch, "/people/"+url.PathEscape(personID), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeletePerson(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personID, err := req.RequireString("personId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.client.Do(ctx, http.MethodDelete, "/people/"+url.PathEscape(personID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted person %s", personID)), nil
}
