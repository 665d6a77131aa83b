package tools

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) interactionTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("create_interaction",
				mcp.WithDescription("Log an interaction (call, email, meeting...) with a person or a company. At least one of personId or companyId is required. The date defaults to now when omitted."),
				mcp.WithTitleAnnotation("Create Interaction"),
				mcp.WithString("type", mcp.Required(),
					mcp.Description("Kind of interaction."),
					mcp.Enum("call", "email", "meeting", "note", "other")),
				mcp.WithString("date",
					mcp.Description("When the interaction happened, ISO 8601. Omit to let folk record it as now.")),
				mcp.WithString("note",
					mcp.Description("Free-form notes about the interaction.")),
				mcp.WithString("personId",
					mcp.Description("ID of the person the interaction was with.")),
				mcp.WithString("companyId",
					mcp.Description("ID of the company the interaction was with.")),
			),
			Handler: t.CreateInteraction,
		},
	}
}

func (t *Toolset) CreateInteraction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("type"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	if !hasRelationTarget(args) {
		return mcp.NewToolResultError(errMissingRelation), nil
	}

	// An omitted date is omitted from the body too: folk stamps the
	// interaction with the current time server-side.
	body := folk.PickFields(args, "type", "date", "note", "personId", "companyId")

	raw, err := t.client.Do(ctx, http.MethodPost, "/interactions", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}
