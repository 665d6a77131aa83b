package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) reminderTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_reminders",
				mcp.WithDescription("List reminders, optionally filtered by the person or company they are attached to."),
				mcp.WithTitleAnnotation("List Reminders"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of reminders to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
				mcp.WithString("personId",
					mcp.Description("Only return reminders attached to this person.")),
				mcp.WithString("companyId",
					mcp.Description("Only return reminders attached to this company.")),
			),
			Handler: t.ListReminders,
		},
		{
			Tool: mcp.NewTool("get_reminder",
				mcp.WithDescription("Fetch a single reminder by ID."),
				mcp.WithTitleAnnotation("Get Reminder"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("reminderId", mcp.Required(),
					mcp.Description("ID of the reminder to fetch.")),
			),
			Handler: t.GetReminder,
		},
		{
			Tool: mcp.NewTool("create_reminder",
				mcp.WithDescription("Create a reminder attached to a person or a company. At least one of personId or companyId is required."),
				mcp.WithTitleAnnotation("Create Reminder"),
				mcp.WithString("title", mcp.Required(),
					mcp.Description("Title of the reminder.")),
				mcp.WithString("dueDate",
					mcp.Description("Due date in ISO 8601 format.")),
				mcp.WithString("personId",
					mcp.Description("ID of the person to attach the reminder to.")),
				mcp.WithString("companyId",
					mcp.Description("ID of the company to attach the reminder to.")),
			),
			Handler: t.CreateReminder,
		},
		{
			Tool: mcp.NewTool("update_reminder",
				mcp.WithDescription("Update a reminder. Only the supplied fields are changed."),
				mcp.WithTitleAnnotation("Update Reminder"),
				mcp.WithString("reminderId", mcp.Required(),
					mcp.Description("ID of the reminder to update.")),
				mcp.WithString("title",
					mcp.Description("Title of the reminder.")),
				mcp.WithString("dueDate",
					mcp.Description("Due date in ISO 8601 format.")),
			),
			Handler: t.UpdateReminder,
		},
		{
			Tool: mcp.NewTool("delete_reminder",
				mcp.WithDescription("Delete a reminder by ID."),
				mcp.WithTitleAnnotation("Delete Reminder"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("reminderId", mcp.Required(),
					mcp.Description("ID of the reminder to delete.")),
			),
			Handler: t.DeleteReminder,
		},
	}
}

func (t *Toolset) ListReminders(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"]).
		Add("personId", args["personId"]).
		Add("companyId", args["companyId"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/reminders"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reminderID, err := req.RequireString("reminderId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/reminders/"+url.PathEscape(reminderID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("title"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	if !hasRelationTarget(args) {
		return mcp.NewToolResultError(errMissingRelation), nil
	}

	body := folk.PickFields(args, "title", "dueDate", "personId", "companyId")

	raw, err := t.client.Do(ctx, http.MethodPost, "/reminders", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdateReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reminderID, err := req.RequireString("reminderId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := folk.PickFields(req.GetArguments(), "title", "dueDate")

	raw, err := t.client.Do(ctx, http.MethodPatch, "/reminders/"+url.PathEscape(reminderID), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeleteReminder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reminderID, err := req.RequireString("reminderId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.client.Do(ctx, http.MethodDelete, "/reminders/"+url.PathEscape(reminderID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted reminder %s", reminderID)), nil
}
