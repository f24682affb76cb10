package tools

import (
	"context"

	"github.com/averycrespi/mathline/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool is an MCP tool definition paired with its handler
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool backed by calc
func All(calc types.Calculator) []Tool {
	return []Tool{
		NewCalculateTool(calc),
		NewSolveEquationTool(calc),
		NewSetVariableTool(calc),
		NewListVariablesTool(calc),
		NewNormalizeExpressionTool(),
	}
}
