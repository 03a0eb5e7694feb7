package models

// ContainerType classifies a dashboard layout container node.
type ContainerType string

const (
	// ContainerHorizontal lays its children out left to right.
	ContainerHorizontal ContainerType = "horizontal"
	// ContainerVertical lays its children out top to bottom.
	ContainerVertical ContainerType = "vertical"
	// ContainerFlow is a flow container without a declared direction.
	ContainerFlow ContainerType = "flow"
	// ContainerDeviceZone is a device-specific layout zone.
	ContainerDeviceZone ContainerType = "device-zone"
	// ContainerLeaf is a terminal widget zone (worksheet, text, image, ...).
	// Unrecognized container types also classify as leaf.
	ContainerLeaf ContainerType = "leaf"
)

// Rect is a position/size rectangle in the dashboard coordinate space.
type Rect struct {
	// X is the left offset.
	X int `json:"x"`
	// Y is the top offset.
	Y int `json:"y"`
	// Width is the rectangle width.
	Width int `json:"width"`
	// Height is the rectangle height.
	Height int `json:"height"`
}

// LayoutContainer is one node of a dashboard's visual composition tree.
// Children preserve document order, which reflects visual arrangement.
type LayoutContainer struct {
	// ID is the source zone id, present only in verbose extraction.
	ID string `json:"id,omitempty"`
	// Type classifies the container.
	Type ContainerType `json:"type"`
	// Title is the container title. Nil means no title was declared, which
	// is distinct from a declared empty title.
	Title *string `json:"title,omitempty"`
	// WorksheetName is set when the leaf hosts a worksheet.
	WorksheetName *string `json:"worksheetName,omitempty"`
	// Position is the declared rectangle, nil when the source omits it.
	Position *Rect `json:"position,omitempty"`
	// Children are the nested containers in document order. Empty for leaves.
	Children []LayoutContainer `json:"children,omitempty"`
}
