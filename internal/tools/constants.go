package tools

// Tool names
const (
	ToolCalculate           = "calculate"
	ToolSolveEquation       = "solve_equation"
	ToolSetVariable         = "set_variable"
	ToolListVariables       = "list_variables"
	ToolNormalizeExpression = "normalize_expression"
)
