package models

// Worksheet holds the metadata extracted for a single worksheet.
type Worksheet struct {
	// Name is the worksheet name, unique within the workbook.
	Name string `json:"name"`
	// Caption is the display caption, if one is declared.
	Caption *string `json:"caption,omitempty"`
	// CalculatedFields used on this worksheet, in document order.
	CalculatedFields []CalculatedField `json:"calculatedFields"`
	// Filters configured on this worksheet, in document order.
	Filters []FilterConfig `json:"filters"`
	// Zones is the root of the shelf/zone tree, nil when the worksheet
	// declares no table structure.
	Zones *Zone `json:"zones,omitempty"`
}

// Dashboard holds the metadata extracted for a single dashboard.
type Dashboard struct {
	// Name is the dashboard name, unique within the workbook.
	Name string `json:"name"`
	// Caption is the display caption, if one is declared.
	Caption *string `json:"caption,omitempty"`
	// LayoutContainers are the root layout containers in document order.
	LayoutContainers []LayoutContainer `json:"layoutContainers"`
	// Actions declared by this dashboard, in document order.
	Actions []DashboardAction `json:"actions"`
	// Filters hosted in the dashboard's own filter zones.
	Filters []FilterConfig `json:"filters,omitempty"`
}
