package models

// LODType identifies the level-of-detail keyword governing a formula.
type LODType string

const (
	// LODNone marks a formula that is not a top-level LOD expression.
	LODNone LODType = ""
	// LODFixed computes the aggregate at a fixed dimensional grain.
	LODFixed LODType = "FIXED"
	// LODInclude computes the aggregate at a finer grain than the view.
	LODInclude LODType = "INCLUDE"
	// LODExclude computes the aggregate at a coarser grain than the view.
	LODExclude LODType = "EXCLUDE"
)

// CalculatedField represents one calculated-field definition, including its
// level-of-detail classification. IsLOD is true exactly when LODType is not
// LODNone, and LODScope is populated only for LOD fields.
type CalculatedField struct {
	// Name is the field name with Tableau's bracket quoting removed.
	Name string `json:"name"`
	// Formula is the raw formula text, verbatim.
	Formula string `json:"formula"`
	// Caption is the display caption, if declared.
	Caption *string `json:"caption,omitempty"`
	// Comment is the author comment attached to the calculation, if any.
	Comment *string `json:"comment,omitempty"`
	// Datatype is the declared data type (real, string, ...), if any.
	Datatype *string `json:"datatype,omitempty"`
	// Role is the declared role (dimension or measure), if any.
	Role *string `json:"role,omitempty"`
	// FieldType is the declared type attribute (quantitative, ordinal, ...).
	FieldType *string `json:"type,omitempty"`
	// Hidden reports whether the field is hidden from the data pane.
	Hidden bool `json:"hidden,omitempty"`
	// IsLOD reports whether the formula is a top-level LOD expression.
	IsLOD bool `json:"isLod"`
	// LODType is the governing keyword, LODNone for non-LOD formulas.
	LODType LODType `json:"lodType,omitempty"`
	// LODScope is the ordered, de-duplicated dimension list preceding the
	// colon of an LOD expression. Empty for non-LOD formulas.
	LODScope []string `json:"lodScope,omitempty"`
}
