package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) webhookTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_webhooks",
				mcp.WithDescription("List the webhooks registered on the folk workspace."),
				mcp.WithTitleAnnotation("List Webhooks"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of webhooks to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
			),
			Handler: t.ListWebhooks,
		},
		{
			Tool: mcp.NewTool("get_webhook",
				mcp.WithDescription("Fetch a single webhook by ID."),
				mcp.WithTitleAnnotation("Get Webhook"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("webhookId", mcp.Required(),
					mcp.Description("ID of the webhook to fetch.")),
			),
			Handler: t.GetWebhook,
		},
		{
			Tool: mcp.NewTool("create_webhook",
				mcp.WithDescription("Register a webhook endpoint to receive folk events."),
				mcp.WithTitleAnnotation("Create Webhook"),
				mcp.WithString("url", mcp.Required(),
					mcp.Description("HTTPS endpoint folk will deliver events to."),
					mcp.Pattern(`^https?://`)),
				mcp.WithArray("events",
					mcp.Description("Event names to subscribe to. Omit to subscribe to all events."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.CreateWebhook,
		},
		{
			Tool: mcp.NewTool("update_webhook",
				mcp.WithDescription("Update a webhook. Only the supplied fields are changed."),
				mcp.WithTitleAnnotation("Update Webhook"),
				mcp.WithString("webhookId", mcp.Required(),
					mcp.Description("ID of the webhook to update.")),
				mcp.WithString("url",
					mcp.Description("HTTPS endpoint folk will deliver events to."),
					mcp.Pattern(`^https?://`)),
				mcp.WithArray("events",
					mcp.Description("Event names to subscribe to."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.UpdateWebhook,
		},
		{
			Tool: mcp.NewTool("delete_webhook",
				mcp.WithDescription("Delete a webhook by ID."),
				mcp.WithTitleAnnotation("Delete Webhook"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("webhookId", mcp.Required(),
					mcp.Description("ID of the webhook to delete.")),
			),
			Handler: t.DeleteWebhook,
		},
	}
}

func (t *Toolset) ListWebhooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/webhooks"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhookId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/webhooks/"+url.PathEscape(webhookID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreateWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("url"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := folk.PickFields(req.GetArguments(), "url", "events")

	raw, err := t.client.Do(ctx, http.MethodPost, "/webhooks", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdateWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhookId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	body := folk.PickFields(req.GetArguments(), "url", "events")

	raw, err := t.client.Do(ctx, http.MethodPatch, "/webhooks/"+url.PathEscape(webhookID), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeleteWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	webhookID, err := req.RequireString("webhookId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.client.Do(ctx, http.MethodDelete, "/webhooks/"+url.PathEscape(webhookID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted webhook %s", webhookID)), nil
}
