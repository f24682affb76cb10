package results

// ListVariablesToolResult represents the result of the list_variables tool
type ListVariablesToolResult struct {
	Message   string     `json:"message"`
	Count     int        `json:"count"`
	Variables []Variable `json:"variables"`
}
