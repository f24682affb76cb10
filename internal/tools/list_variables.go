package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/mathline/internal/results"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListVariablesTool handles list variables requests
type ListVariablesTool struct {
	calc types.Calculator
}

// NewListVariablesTool creates a new list variables tool
func NewListVariablesTool(calc types.Calculator) *ListVariablesTool {
	return &ListVariablesTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *ListVariablesTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListVariables,
		mcp.WithDescription("List every variable that has been set, sorted by name"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListVariablesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slog.Debug("MCP tool called", "tool", ToolListVariables)

	toolResult := results.ListVariablesToolResult{
		Variables: results.NewVariables(t.calc.Variables()),
	}
	toolResult.Count = len(toolResult.Variables)
	if toolResult.Count == 0 {
		toolResult.Message = "No variables set. Use set_variable to define one."
	} else {
		toolResult.Message = fmt.Sprintf("Found %d variables.", toolResult.Count)
	}

	return newJSONResult(ToolListVariables, toolResult)
}
