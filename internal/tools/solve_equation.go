package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/mathline/internal/results"
	"github.com/averycrespi/mathline/internal/solver"
	"github.com/averycrespi/mathline/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// SolveEquationTool handles single-variable equation requests
type SolveEquationTool struct {
	calc types.Calculator
}

// NewSolveEquationTool creates a new solve equation tool
func NewSolveEquationTool(calc types.Calculator) *SolveEquationTool {
	return &SolveEquationTool{
		calc: calc,
	}
}

// GetTool returns the MCP tool definition
func (t *SolveEquationTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolSolveEquation,
		mcp.WithDescription("Solve a single-variable equation such as \"2x+4=10\" or \"x^2-4=0\". "+
			"The unknown is the first variable on the left side; other variables must already be set. "+
			"Roots are found numerically, so only one root is reported"),
		mcp.WithString("equation", mcp.Required(), mcp.Description("Equation containing exactly one '='")),
	)
	return tool
}

// Handle processes the tool request
func (t *SolveEquationTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	equation := ParseText(req, "equation")
	if equation == "" {
		return missingArgument(ToolSolveEquation, "equation"), nil
	}

	slog.Debug("MCP tool called",
		"tool", ToolSolveEquation,
		"equation", equation)

	sol, err := t.calc.Solve(ctx, equation)
	switch {
	case errors.Is(err, solver.ErrNotEquation):
		return mcp.NewToolResultError("equation must contain exactly one '='"), nil
	case errors.Is(err, solver.ErrNoVariable):
		return mcp.NewToolResultError("the left side of the equation has no variable to solve for"), nil
	case err != nil:
		slog.Error("Failed to solve equation",
			"tool", ToolSolveEquation,
			"equation", equation,
			"error", err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to solve equation: %v", err)), nil
	}

	toolResult := results.SolveEquationToolResult{
		Arguments: results.SolveEquationToolArgs{
			Equation: equation,
		},
		Normalized: sol.Equation,
		Variable:   sol.Variable,
		Solved:     sol.Solved,
		Value:      sol.Value,
		Strategy:   sol.Strategy,
	}
	if sol.Solved {
		toolResult.Message = sol.Variable + " = " + sol.Value
	} else {
		toolResult.Message = solver.Unsolved
	}

	slog.Debug("MCP tool completed successfully",
		"tool", ToolSolveEquation,
		"equation", equation,
		"solved", sol.Solved,
		"strategy", sol.Strategy)

	return newJSONResult(ToolSolveEquation, toolResult)
}
