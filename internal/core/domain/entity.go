package domain

// EntityKind is the semantic category assigned to a raw query string.
type EntityKind string

const (
	EntityKindTransaction EntityKind = "transaction"
	EntityKindAddress     EntityKind = "address"
	EntityKindObject      EntityKind = "object"
	EntityKindUnknown     EntityKind = "unknown"
)

// Label returns the display label used by suggestions.
func (k EntityKind) Label() string {
	switch k {
	case EntityKindTransaction:
		return "Transaction"
	case EntityKindAddress:
		return "Address"
	case EntityKindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// ClassificationResult is the outcome of classifying one input string.
// Confidence is always in [0, 1]; Unknown with confidence 0 is a valid result.
type ClassificationResult struct {
	Kind       EntityKind `json:"kind"`
	Confidence float64    `json:"confidence"`
}

// IsKnown reports whether the input maps to a searchable entity.
func (r ClassificationResult) IsKnown() bool {
	return r.Kind != EntityKindUnknown
}
