package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/normalize"
	"github.com/averycrespi/mathline/internal/results"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles arithmetic evaluation requests
type CalculateTool struct {
	calc types.Calculator
}

// NewCalculateTool creates a new calculate tool
func NewCalculateTool(calc types.Calculator) *CalculateTool {
	return &CalculateTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription("Evaluate an arithmetic expression. Accepts fractions and mixed numbers (\"2 1/2 + 1/4\"), "+
			"natural language (\"9 squared\", \"sqrt of 16\"), caret powers, the functions sqrt, sin, cos, tan and log, "+
			"the constants pi and e, and previously set variables"),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression to evaluate, without '='")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := ParseText(req, "expression")
	if expression == "" {
		return missingArgument(ToolCalculate, "expression"), nil
	}

	slog.Debug("MCP tool called",
		"tool", ToolCalculate,
		"expression", expression)

	toolResult := results.CalculateToolResult{
		Arguments: results.CalculateToolArgs{
			Expression: expression,
		},
		Normalized: normalize.Normalize(expression),
	}

	ev, err := t.calc.Evaluate(ctx, expression)
	if err != nil {
		var exprErr *expr.Error
		if !errors.As(err, &exprErr) {
			slog.Error("Failed to evaluate expression",
				"tool", ToolCalculate,
				"expression", expression,
				"error", err)
			return mcp.NewToolResultError(fmt.Sprintf("Failed to evaluate expression: %v", err)), nil
		}

		slog.Debug("Expression is invalid",
			"tool", ToolCalculate,
			"expression", expression,
			"kind", exprErr.Kind)

		toolResult.Message = exprErr.Error()
		toolResult.ErrorKind = exprErr.Kind.String()
		toolResult.ErrorContext = results.NewErrorContext(toolResult.Normalized, exprErr.Pos)

		res, err := newJSONResult(ToolCalculate, toolResult)
		if res != nil {
			res.IsError = true
		}
		return res, err
	}

	toolResult.Result = ev.Result
	toolResult.ValueKind = results.NewValueKind(ev.ValueKind)
	toolResult.Message = "= " + ev.Result

	slog.Debug("MCP tool completed successfully",
		"tool", ToolCalculate,
		"expression", expression,
		"result", ev.Result)

	return newJSONResult(ToolCalculate, toolResult)
}
