package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) noteTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_notes",
				mcp.WithDescription("List notes, optionally filtered by the person or company they are attached to."),
				mcp.WithTitleAnnotation("List Notes"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of notes to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
				mcp.WithString("personId",
					mcp.Description("Only return notes attached to this person.")),
				mcp.WithString("companyId",
					mcp.Description("Only return notes attached to this company.")),
			),
			Handler: t.ListNotes,
		},
		{
			Tool: mcp.NewTool("get_note",
				mcp.WithDescription("Fetch a single note by ID."),
				mcp.WithTitleAnnotation("Get Note"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("noteId", mcp.Required(),
					mcp.Description("ID of the note to fetch.")),
			),
			Handler: t.GetNote,
		},
		{
			Tool: mcp.NewTool("create_note",
				mcp.WithDescription("Create a note attached to a person or a company. At least one of personId or companyId is required."),
				mcp.WithTitleAnnotation("Create Note"),
				mcp.WithString("content", mcp.Required(),
					mcp.Description("Text content of the note.")),
				mcp.WithString("personId",
					mcp.Description("ID of the person to attach the note to.")),
				mcp.WithString("companyId",
					mcp.Description("ID of the company to attach the note to.")),
			),
			Handler: t.CreateNote,
		},
		{
			Tool: mcp.NewTool("update_note",
				mcp.WithDescription("Update a note. Only the supplied fields are changed."),
				mcp.WithTitleAnnotation("Update Note"),
				mcp.WithString("noteId", mcp.Required(),
					mcp.Description("ID of the note to update.")),
				mcp.WithString("content",
					mcp.Description("New text content of the note.")),
			),
			Handler: t.UpdateNote,
		},
		{
			Tool: mcp.NewTool("delete_note",
				mcp.WithDescription("Delete a note by ID."),
				mcp.WithTitleAnnotation("Delete Note"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("noteId", mcp.Required(),
					mcp.Description("ID of the note to delete.")),
			),
			Handler: t.DeleteNote,
		},
	}
}

func (t *Toolset) ListNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"]).
		Add("personId", args["personId"]).
		Add("companyId", args["companyId"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/notes"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("noteId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/notes/"+url.PathEscape(noteID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("content"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	if !hasRelationTarget(args) {
		return mcp.NewToolResultError(errMissingRelation), nil
	}

	body := folk.PickFields(args, "content", "personId", "companyId")

	raw, err := t.client.Do(ctx, http.MethodPost, "/notes", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdateNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("noteId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := folk.PickFields(req.GetArguments(), "content")

	raw, err := t.client.Do(ctx, http.MethodPatch, "/notes/"+url.PathEscape(noteID), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeleteNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID, err := req.RequireString("noteId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.client.Do(ctx, http.MethodDelete, "/notes/"+url.PathEscape(noteID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted note %s", noteID)), nil
}
