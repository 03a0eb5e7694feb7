package models

// DiagnosticCode identifies the class of a recoverable parse condition.
type DiagnosticCode string

const (
	// DiagStructuralAnomaly covers cyclic container nesting, mismatched
	// field-mapping arity and dangling story-point references.
	DiagStructuralAnomaly DiagnosticCode = "structural-anomaly"
	// DiagUnsupportedVersion reports a declared format version newer than
	// any known schema; extraction proceeds best-effort.
	DiagUnsupportedVersion DiagnosticCode = "unsupported-version"
	// DiagClassificationAmbiguity reports a formula or filter whose syntax
	// matched no known pattern and degraded to none/unknown.
	DiagClassificationAmbiguity DiagnosticCode = "classification-ambiguity"
)

// Severity grades a diagnostic.
type Severity string

const (
	// SeverityWarning marks conditions a caller should review.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks degraded-mode notes.
	SeverityInfo Severity = "info"
)

// Diagnostic is one recoverable condition accumulated during a parse.
// Diagnostics never abort extraction; they are returned alongside the
// workbook so callers can inspect partial-success detail.
type Diagnostic struct {
	// Code is the condition class.
	Code DiagnosticCode `json:"code"`
	// Severity grades the condition.
	Severity Severity `json:"severity"`
	// Entity locates the affected entity, e.g. "dashboard/Overview".
	Entity string `json:"entity,omitempty"`
	// Message is a human-readable description.
	Message string `json:"message"`
}
