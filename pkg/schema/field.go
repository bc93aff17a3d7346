package schema

// Kind is the simplified enum of field kinds understood by the validator.
type Kind string

const (
	KindString        Kind = "string"
	KindNumber        Kind = "number"
	KindInteger       Kind = "integer"
	KindBoolean       Kind = "boolean"
	KindDateTime      Kind = "datetime"
	KindEnum          Kind = "enum"
	KindObject        Kind = "object"
	KindArray         Kind = "array"
	KindUnion         Kind = "union"
	KindDiscriminated Kind = "discriminated"
)

// String format identifiers recognised by the validator. Formats narrow a
// string field beyond its kind: URLs must parse with a scheme and host,
// date-times must be RFC 3339, colors must be hex notation, and SVG markup is
// sanitized before it is accepted.
const (
	FormatURL      = "url"
	FormatDateTime = "date-time"
	FormatColor    = "color"
	FormatSVG      = "svg"
)

// Field specifies a single named member of a definition: its kind, whether it
// is required, the default substituted when it is absent, and the kind
// specific constraints the validator enforces. Exactly one structural slot is
// populated for composite kinds: Elem for arrays, Ref or Fields for objects,
// Branches for unions.
type Field struct {
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Required    bool     `json:"required,omitempty"`
	Default     any      `json:"default,omitempty"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	MinLength   *int     `json:"minLength,omitempty"`
	MaxLength   *int     `json:"maxLength,omitempty"`
	Pattern     string   `json:"pattern,omitempty"`
	Format      string   `json:"format,omitempty"`
	Elem        *Field   `json:"elem,omitempty"`
	Ref         string   `json:"ref,omitempty"`
	Fields      []Field  `json:"fields,omitempty"`
	Branches    []Field  `json:"branches,omitempty"`
}

// Num returns a pointer to v for use as an inclusive numeric bound.
func Num(v float64) *float64 {
	return &v
}

// Len returns a pointer to v for use as a string length bound.
func Len(v int) *int {
	return &v
}
