package tools

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cast"
)

// ParseText returns a text argument, accepting numbers as well as strings.
// Missing or unconvertible arguments yield an empty string.
func ParseText(req mcp.CallToolRequest, key string) string {
	raw := mcp.ParseArgument(req, key, nil)
	if raw == nil {
		return ""
	}
	s, err := cast.ToStringE(raw)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// newJSONResult marshals a tool result into indented JSON text
func newJSONResult(tool string, toolResult any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(toolResult, "", "  ")
	if err != nil {
		slog.Error("Failed to marshal tool result",
			"tool", tool,
			"error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result into JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// missingArgument reports a required argument that was not provided
func missingArgument(tool, key string) *mcp.CallToolResult {
	slog.Debug("MCP tool called with missing "+key+" parameter", "tool", tool)
	return mcp.NewToolResultError(key + " parameter is required")
}
