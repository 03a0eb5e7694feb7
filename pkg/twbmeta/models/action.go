package models

// ActionType classifies a dashboard action.
type ActionType string

const (
	// ActionFilter filters target sheets from marks selected on sources.
	ActionFilter ActionType = "filter"
	// ActionHighlight highlights matching marks on target sheets.
	ActionHighlight ActionType = "highlight"
	// ActionURL opens a URL built from the template.
	ActionURL ActionType = "url"
	// ActionNavigation navigates to another sheet.
	ActionNavigation ActionType = "navigation"
	// ActionParameter writes a value into a parameter.
	ActionParameter ActionType = "parameter"
	// ActionUnknown marks an action discriminator outside the known set.
	ActionUnknown ActionType = "unknown"
)

// FieldMapping pairs a source field with a target field for filter and
// highlight actions. Pairs are formed positionally.
type FieldMapping struct {
	// Source is the field on the source sheet.
	Source string `json:"source"`
	// Target is the field on the target sheet.
	Target string `json:"target"`
}

// DashboardAction is one declared interaction binding on a dashboard.
type DashboardAction struct {
	// Name is the declared action name.
	Name string `json:"name"`
	// Type is the classified action kind.
	Type ActionType `json:"type"`
	// Enabled mirrors the enabled attribute; true when absent.
	Enabled bool `json:"enabled"`
	// SourceSheets are the sheets the action listens on, in declared order.
	// An "all worksheets" declaration is expanded to the dashboard's full
	// worksheet list at extraction time.
	SourceSheets []string `json:"sourceSheets,omitempty"`
	// TargetSheets are the sheets the action affects, in declared order,
	// expanded the same way as SourceSheets.
	TargetSheets []string `json:"targetSheets,omitempty"`
	// FieldMappings pair source fields with target fields for filter and
	// highlight actions.
	FieldMappings []FieldMapping `json:"fieldMappings,omitempty"`
	// Fields are unpaired field references (URL placeholders, leftover
	// mapping fields, plain field lists), in declared order.
	Fields []string `json:"fields,omitempty"`
	// URLTemplate is the raw URL template of a url action, placeholders
	// included verbatim.
	URLTemplate *string `json:"urlTemplate,omitempty"`
	// ParameterName is the target parameter of a parameter action.
	ParameterName *string `json:"parameterName,omitempty"`
	// ValueSource is the field or constant feeding a parameter action.
	ValueSource *string `json:"valueSource,omitempty"`
}
