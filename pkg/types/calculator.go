package types

import (
	"context"
)

// Calculator defines the calculator interface shared by the shell and the MCP tools
type Calculator interface {
	// Process handles one line of shell input and returns the line to print.
	Process(ctx context.Context, line string) Outcome

	Evaluate(ctx context.Context, input string) (*Evaluation, error)
	Solve(ctx context.Context, equation string) (*Solution, error)
	Assign(name, value string) (float64, error)
	Variables() []Variable
}

// OutcomeKind classifies what a line of input turned out to be
type OutcomeKind string

const (
	OutcomeExpression OutcomeKind = "expression"
	OutcomeAssignment OutcomeKind = "assignment"
	OutcomeEquation   OutcomeKind = "equation"
	OutcomeError      OutcomeKind = "error"
)

// Outcome is the single formatted line produced for one turn
type Outcome struct {
	Kind OutcomeKind `json:"kind"`
	Text string      `json:"text"`
}

// Evaluation is the result of evaluating an arithmetic expression
type Evaluation struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Result     string `json:"result"`
	ValueKind  string `json:"value_kind"`
}

// Solution is the result of solving a single-variable equation
type Solution struct {
	Equation string `json:"equation"`
	Variable string `json:"variable"`
	Solved   bool   `json:"solved"`
	Value    string `json:"value,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// Variable is a named value held by the variable store
type Variable struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
