package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/mathline/internal/expr"
	"github.com/averycrespi/mathline/internal/results"
	"github.com/averycrespi/mathline/internal/vars"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SetVariableTool handles variable assignment requests
type SetVariableTool struct {
	calc types.Calculator
}

// NewSetVariableTool creates a new set variable tool
func NewSetVariableTool(calc types.Calculator) *SetVariableTool {
	return &SetVariableTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *SetVariableTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSetVariable,
		mcp.WithDescription("Set a variable for use in later calculations and equations"),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Variable name; must be an identifier that is not a function or constant name"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("Number or expression to store, for example \"5\" or \"1/2\""),
		),
	)
	return tool
}

// Handle processes the tool request
func (t *SetVariableTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arg := ParseText(req, "name")
	if arg == "" {
		return missingArgument(ToolSetVariable, "name"), nil
	}

	raw := ParseText(req, "value")
	if raw == "" {
		return missingArgument(ToolSetVariable, "value"), nil
	}
	name := vars.Canonical(arg)

	slog.Debug("MCP tool called",
		"tool", ToolSetVariable,
		"name", name,
		"value", raw)

	v, err := t.calc.Assign(name, raw)
	if err != nil {
		slog.Debug("Failed to set variable",
			"tool", ToolSetVariable,
			"name", name,
			"error", err)

		var exprErr *expr.Error
		switch {
		case errors.As(err, &exprErr):
			return mcp.NewToolResultError(fmt.Sprintf("Cannot evaluate value for %s: %s", name, exprErr.Error())), nil
		case errors.Is(err, vars.ErrReservedName), errors.Is(err, vars.ErrInvalidName):
			return mcp.NewToolResultError(fmt.Sprintf("Cannot set variable: %v", err)), nil
		default:
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set variable %s: %v", name, err)), nil
		}
	}

	toolResult := results.SetVariableToolResult{
		Arguments: results.SetVariableToolArgs{
			Name:  arg,
			Value: raw,
		},
		Variable: results.NewVariable(types.Variable{Name: name, Value: v}),
	}
	toolResult.Message = fmt.Sprintf("Set %s = %s", name, toolResult.Variable.Display)

	slog.Debug("MCP tool completed successfully",
		"tool", ToolSetVariable,
		"name", name,
		"value", v)

	return newJSONResult(ToolSetVariable, toolResult)
}
