package models

// Story is an ordered narrative sequence of story points.
type Story struct {
	// StoryName is the declared story name.
	StoryName string `json:"storyName"`
	// Description is the declared description, if any.
	Description *string `json:"description,omitempty"`
	// Points are the story points. Slice order follows the document; the
	// Order field on each point carries the declared sequence position,
	// which downstream consumers sort by.
	Points []StoryPoint `json:"points"`
}

// StoryPoint is one narrative slide of a story. It references at most one of
// a worksheet or a dashboard, never both.
type StoryPoint struct {
	// Order is the declared zero-based sequence position. It is taken from
	// the source document, not re-derived from encounter order.
	Order int `json:"order"`
	// Caption is the point caption.
	Caption string `json:"caption"`
	// NarrativeText is the combined narrative annotation text, if any.
	NarrativeText *string `json:"narrativeText,omitempty"`
	// WorksheetName is the referenced worksheet, if the point shows one.
	WorksheetName *string `json:"worksheetName,omitempty"`
	// DashboardName is the referenced dashboard, if the point shows one.
	DashboardName *string `json:"dashboardName,omitempty"`
	// Unresolved reports that the referenced name matched no known
	// worksheet or dashboard. The dangling name is kept above.
	Unresolved bool `json:"unresolved,omitempty"`
}
