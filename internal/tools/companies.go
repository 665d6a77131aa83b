package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/folkapp/folk-mcp/internal/folk"
)

func (t *Toolset) companyTools() []Definition {
	return []Definition{
		{
			Tool: mcp.NewTool("list_companies",
				mcp.WithDescription("List companies in the folk workspace, with optional search and cursor-based pagination."),
				mcp.WithTitleAnnotation("List Companies"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithNumber("limit",
					mcp.Description("Maximum number of companies to return (1-100)."),
					mcp.Min(1), mcp.Max(100)),
				mcp.WithString("cursor",
					mcp.Description("Opaque pagination cursor from a previous response.")),
				mcp.WithString("search",
					mcp.Description("Free-text search across company names and domains.")),
			),
			Handler: t.ListCompanies,
		},
		{
			Tool: mcp.NewTool("get_company",
				mcp.WithDescription("Fetch a single company by ID."),
				mcp.WithTitleAnnotation("Get Company"),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("companyId", mcp.Required(),
					mcp.Description("ID of the company to fetch.")),
			),
			Handler: t.GetCompany,
		},
		{
			Tool: mcp.NewTool("create_company",
				mcp.WithDescription("Create a new company in the folk workspace."),
				mcp.WithTitleAnnotation("Create Company"),
				mcp.WithString("name", mcp.Required(),
					mcp.Description("Name of the company.")),
				mcp.WithString("description",
					mcp.Description("Free-form description.")),
				mcp.WithString("website",
					mcp.Description("Company website URL."),
					mcp.Pattern(`^https?://`)),
				mcp.WithString("email",
					mcp.Description("Primary contact email address."),
					mcp.Pattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)),
				mcp.WithArray("groups",
					mcp.Description("IDs of the groups the company belongs to."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.CreateCompany,
		},
		{
			Tool: mcp.NewTool("update_company",
				mcp.WithDescription("Update a company. Only the supplied fields are changed; omitted fields keep their current value."),
				mcp.WithTitleAnnotation("Update Company"),
				mcp.WithString("companyId", mcp.Required(),
					mcp.Description("ID of the company to update.")),
				mcp.WithString("name",
					mcp.Description("Name of the company.")),
				mcp.WithString("description",
					mcp.Description("Free-form description.")),
				mcp.WithString("website",
					mcp.Description("Company website URL."),
					mcp.Pattern(`^https?://`)),
				mcp.WithString("email",
					mcp.Description("Primary contact email address."),
					mcp.Pattern(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)),
				mcp.WithArray("groups",
					mcp.Description("IDs of the groups the company belongs to."),
					mcp.Items(map[string]any{"type": "string"})),
			),
			Handler: t.UpdateCompany,
		},
		{
			Tool: mcp.NewTool("delete_company",
				mcp.WithDescription("Delete a company by ID."),
				mcp.WithTitleAnnotation("Delete Company"),
				mcp.WithDestructiveHintAnnotation(true),
				mcp.WithString("companyId", mcp.Required(),
					mcp.Description("ID of the company to delete.")),
			),
			Handler: t.DeleteCompany,
		},
	}
}

func (t *Toolset) ListCompanies(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	query := folk.Query{}.
		Add("limit", args["limit"]).
		Add("cursor", args["cursor"]).
		Add("search", args["search"])

	raw, err := t.client.Do(ctx, http.MethodGet, "/companies"+query.Encode(), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) GetCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := req.RequireString("companyId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	raw, err := t.client.Do(ctx, http.MethodGet, "/companies/"+url.PathEscape(companyID), nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) CreateCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, err := req.RequireString("name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	body := folk.PickFields(args, "name", "description", "website", "email")
	if groups, ok := args["groups"]; ok {
		body["groups"] = folk.GroupRefs(groups)
	}

	raw, err := t.client.Do(ctx, http.MethodPost, "/companies", body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) UpdateCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := req.RequireString("companyId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := req.GetArguments()
	body := folk.PickFields(args, "name", "description", "website", "email")
	if groups, ok := args["groups"]; ok {
		body["groups"] = folk.GroupRefs(groups)
	}

	raw, err := t.client.Do(ctx, http.MethodPatch, "/companies/"+url.PathEscape(companyID), body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(raw), nil
}

func (t *Toolset) DeleteCompany(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	companyID, err := req.RequireString("companyId")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if _, err := t.client.Do(ctx, http.MethodDelete, "/companies/"+url.PathEscape(companyID), nil); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted company %s", companyID)), nil
}
