package validate

// IssueKind classifies a validation failure. Every issue the validator emits
// carries exactly one of these kinds; all of them describe problems with the
// supplied data, never process or I/O faults.
type IssueKind string

const (
	IssueMissingRequired   IssueKind = "missing_required"
	IssueUnrecognizedField IssueKind = "unrecognized_field"
	IssueTypeMismatch      IssueKind = "type_mismatch"
	IssueEnumViolation     IssueKind = "enum_violation"
	IssueRangeViolation    IssueKind = "range_violation"
	IssuePatternViolation  IssueKind = "pattern_violation"
	IssueUnknownVariant    IssueKind = "unknown_variant"
	IssueNestedFailure     IssueKind = "nested_failure"
)

// Issue is a single field-scoped validation failure. Path addresses the
// offending value with dotted/indexed notation, e.g. "series[2].data[0].y";
// an empty path refers to the input as a whole.
type Issue struct {
	Path    string    `json:"path,omitempty"`
	Kind    IssueKind `json:"kind"`
	Message string    `json:"message"`
}

// Result captures the outcome of one validation call. On success Value holds
// the defaulted deep copy of the input; on failure Issues enumerates every
// problem found, in field declaration order.
type Result struct {
	Valid  bool    `json:"valid"`
	Value  any     `json:"value,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}
