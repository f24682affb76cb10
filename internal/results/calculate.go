package results

// CalculateToolResult represents the result of the calculate tool
type CalculateToolResult struct {
	Message      string            `json:"message"`
	Arguments    CalculateToolArgs `json:"arguments"`
	Normalized   string            `json:"normalized"`
	Result       string            `json:"result,omitempty"`
	ValueKind    ValueKind         `json:"value_kind,omitempty"`
	ErrorKind    string            `json:"error_kind,omitempty"`
	ErrorContext *ErrorContext     `json:"error_context,omitempty"`
}

// CalculateToolArgs represents the arguments for the calculate tool
type CalculateToolArgs struct {
	Expression string `json:"expression"`
}
