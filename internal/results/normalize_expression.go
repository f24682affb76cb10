package results

// NormalizeExpressionToolResult represents the result of the normalize_expression tool
type NormalizeExpressionToolResult struct {
	Message    string                      `json:"message"`
	Arguments  NormalizeExpressionToolArgs `json:"arguments"`
	Normalized string                      `json:"normalized"`
	Rules      []string                    `json:"rules"`
}

// NormalizeExpressionToolArgs represents the arguments for the normalize_expression tool
type NormalizeExpressionToolArgs struct {
	Expression string `json:"expression"`
}
