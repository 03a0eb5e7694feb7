package models

// FilterType classifies a filter by its declared domain.
type FilterType string

const (
	// FilterCategorical is an enumerated member-list filter.
	FilterCategorical FilterType = "categorical"
	// FilterQuantitative is a numeric range filter.
	FilterQuantitative FilterType = "quantitative"
	// FilterDate is an absolute date-range filter.
	FilterDate FilterType = "date"
	// FilterRelativeDate is a rolling/anchored date-window filter.
	FilterRelativeDate FilterType = "relative-date"
	// FilterUnknown marks a filter domain outside the known set.
	// Classification degrades here instead of failing.
	FilterUnknown FilterType = "unknown"
)

// FilterScope states whether a filter applies to one worksheet or globally.
type FilterScope string

const (
	// ScopeWorksheet applies to the declaring worksheet only.
	ScopeWorksheet FilterScope = "worksheet-local"
	// ScopeDashboard applies across the dashboard / all using worksheets.
	ScopeDashboard FilterScope = "dashboard-global"
)

// FilterRange is a (min, max) bound pair for quantitative and date filters.
// A nil bound is open-ended, which is distinct from zero or epoch.
type FilterRange struct {
	// Min is the lower bound, nil when open.
	Min *string `json:"min,omitempty"`
	// Max is the upper bound, nil when open.
	Max *string `json:"max,omitempty"`
}

// FilterConfig describes one filter placement. Values is populated only for
// categorical filters; quantitative and date filters populate Range instead.
type FilterConfig struct {
	// Field is the filtered field name with bracket quoting removed.
	Field string `json:"field"`
	// Type is the classified filter kind.
	Type FilterType `json:"type"`
	// Scope states worksheet-local vs dashboard-global applicability.
	Scope FilterScope `json:"scope"`
	// Values are the selected members of a categorical filter, in declared
	// order.
	Values []string `json:"values,omitempty"`
	// ExcludedValues are members removed by an exclude-mode member list.
	ExcludedValues []string `json:"excludedValues,omitempty"`
	// Range is the bound pair of a quantitative or date filter.
	Range *FilterRange `json:"range,omitempty"`
	// RelativePeriod is the window of a relative-date filter (e.g. "3 days").
	RelativePeriod *string `json:"relativePeriod,omitempty"`
	// Exclude reports that the member list is an exclusion, not a selection.
	Exclude bool `json:"exclude,omitempty"`
	// ShowAll reports a "show all values" member function.
	ShowAll bool `json:"showAll,omitempty"`
	// Customizable mirrors the customizable attribute.
	Customizable bool `json:"customizable,omitempty"`
	// ShowControls reports whether the filter control is shown. Defaults to
	// true when the source says nothing.
	ShowControls bool `json:"showControls"`
}
