package results

// SolveEquationToolResult represents the result of the solve_equation tool
type SolveEquationToolResult struct {
	Message    string                `json:"message"`
	Arguments  SolveEquationToolArgs `json:"arguments"`
	Normalized string                `json:"normalized"`
	Variable   string                `json:"variable"`
	Solved     bool                  `json:"solved"`
	Value      string                `json:"value,omitempty"`
	Strategy   string                `json:"strategy,omitempty"`
}

// SolveEquationToolArgs represents the arguments for the solve_equation tool
type SolveEquationToolArgs struct {
	Equation string `json:"equation"`
}
