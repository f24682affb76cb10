package results

import (
	"github.com/averycrespi/mathline/internal/value"
	"github.com/averycrespi/mathline/pkg/types"
)

// Variable represents a stored variable
type Variable struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"` // Value as the calculator prints it
}

// NewVariable converts a stored variable into its result form
func NewVariable(v types.Variable) Variable {
	return Variable{
		Name:    v.Name,
		Value:   v.Value,
		Display: value.FormatFloat(v.Value),
	}
}

// NewVariables converts stored variables, never returning nil
func NewVariables(vs []types.Variable) []Variable {
	out := make([]Variable, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewVariable(v))
	}
	return out
}
