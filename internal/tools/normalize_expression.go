package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/mathline/internal/normalize"
	"github.com/averycrespi/mathline/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// NormalizeExpressionTool shows how input text is rewritten before evaluation
type NormalizeExpressionTool struct{}

// NewNormalizeExpressionTool creates a new normalize expression tool
func NewNormalizeExpressionTool() *NormalizeExpressionTool {
	return &NormalizeExpressionTool{}
}

// GetTool returns the MCP tool definition
func (t *NormalizeExpressionTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolNormalizeExpression,
		mcp.WithDescription("Rewrite natural-language phrases, fractions and caret powers into the canonical "+
			"expression the calculator evaluates, listing the rewrite rules that applied"),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Text to normalize")),
	)
	return tool
}

// Handle processes the tool request
func (t *NormalizeExpressionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := ParseText(req, "expression")
	if expression == "" {
		return missingArgument(ToolNormalizeExpression, "expression"), nil
	}

	normalized, rules := normalize.Trace(expression)
	if rules == nil {
		rules = []string{}
	}

	slog.Debug("MCP tool called",
		"tool", ToolNormalizeExpression,
		"expression", expression,
		"rules", strings.Join(rules, ","))

	toolResult := results.NormalizeExpressionToolResult{
		Arguments: results.NormalizeExpressionToolArgs{
			Expression: expression,
		},
		Normalized: normalized,
		Rules:      rules,
	}
	if len(rules) == 0 {
		toolResult.Message = "Expression is already canonical."
	} else {
		toolResult.Message = fmt.Sprintf("Applied %d rewrite rules.", len(rules))
	}

	return newJSONResult(ToolNormalizeExpression, toolResult)
}
