package models

// ShelfRole classifies a worksheet zone by the shelf it represents.
type ShelfRole string

const (
	// RoleRows is the rows shelf.
	RoleRows ShelfRole = "rows"
	// RoleColumns is the columns shelf.
	RoleColumns ShelfRole = "columns"
	// RoleFilters is the filters shelf.
	RoleFilters ShelfRole = "filters"
	// RolePages is the pages shelf.
	RolePages ShelfRole = "pages"
	// RoleMarks covers the marks card and its encodings (color, size, ...).
	RoleMarks ShelfRole = "marks"
	// RoleUnclassified marks a zone whose role is not in the known set.
	// The zone is kept so its field placements stay visible downstream.
	RoleUnclassified ShelfRole = "unclassified"
)

// Zone is one node of a worksheet's shelf/zone tree. The root is the
// worksheet's top-level pane.
type Zone struct {
	// Role classifies the shelf this zone represents.
	Role ShelfRole `json:"role"`
	// Name is the source element name (e.g. a marks encoding like "color").
	Name string `json:"name,omitempty"`
	// Fields are the field references placed on this shelf, in declared
	// order and without de-duplication: repeated placements are legitimate.
	Fields []string `json:"fields,omitempty"`
	// Children are nested zones in document order.
	Children []Zone `json:"children,omitempty"`
}
