package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// errMissingRelation is the exact message returned when a tool requires a
// relation target and the caller supplied neither. The wording is contract
// surface; do not change it.
const errMissingRelation = "Either personId or companyId must be provided"

// hasRelationTarget reports whether the caller supplied at least one of
// personId or companyId.
func hasRelationTarget(args map[string]any) bool {
	_, hasPerson := args["personId"]
	_, hasCompany := args["companyId"]
	return hasPerson || hasCompany
}

// jsonResult pretty-prints an upstream JSON payload into a text result.
// Decoding goes through json.Number so re-encoding is lossless.
func jsonResult(raw []byte) *mcp.CallToolResult {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode folk API response: %v", err))
	}

	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render folk API response: %v", err))
	}

	return mcp.NewToolResultText(string(pretty))
}
