package results

import "github.com/averycrespi/mathline/internal/value"

// ValueKind represents the numeric type of a result as an enum
type ValueKind string

const (
	ValueKindInteger  ValueKind = "integer"
	ValueKindRational ValueKind = "rational"
	ValueKindFloat    ValueKind = "float"
	ValueKindUnknown  ValueKind = "unknown"
)

var valueKindMap = map[string]ValueKind{
	value.KindInt.String():      ValueKindInteger,
	value.KindRational.String(): ValueKindRational,
	value.KindFloat.String():    ValueKindFloat,
}

// NewValueKind returns the ValueKind for an evaluator kind name
func NewValueKind(kind string) ValueKind {
	valueKind, ok := valueKindMap[kind]
	if !ok {
		return ValueKindUnknown
	}
	return valueKind
}
