package results

// SetVariableToolResult represents the result of setting a variable
type SetVariableToolResult struct {
	Message   string              `json:"message"`
	Arguments SetVariableToolArgs `json:"arguments"`
	Variable  Variable            `json:"variable"`
}

// SetVariableToolArgs represents the input arguments for the set_variable tool
type SetVariableToolArgs struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
