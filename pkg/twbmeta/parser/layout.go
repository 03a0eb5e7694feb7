package parser

import (
	"strconv"
	"strings"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// DefaultMaxLayoutDepth bounds the layout walk when the caller does not
// override it. Real dashboards nest a handful of levels deep.
const DefaultMaxLayoutDepth = 64

// LayoutOptions tune the layout walk.
type LayoutOptions struct {
	// MaxDepth bounds nesting depth; zero means DefaultMaxLayoutDepth.
	MaxDepth int
	// IncludeIDs copies source zone ids onto containers.
	IncludeIDs bool
	// SkipGeometry omits position rectangles from containers.
	SkipGeometry bool
}

// ExtractLayoutContainers reconstructs the nested container tree of one
// dashboard. It walks the zone structure depth-first, producing one container
// per node in encounter order and preserving child order exactly as declared.
// Malformed nesting (a node reachable as its own descendant, or nesting past
// the depth bound) is truncated to a leaf and reported to diags; the rest of
// the dashboard extracts normally.
func ExtractLayoutContainers(dashboard *Element, dashboardName string, opts LayoutOptions, diags *Diagnostics) []models.LayoutContainer {
	zones := dashboard.Find("zones")
	if zones == nil {
		return nil
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxLayoutDepth
	}

	w := layoutWalker{
		entity:       "dashboard/" + dashboardName,
		maxDepth:     maxDepth,
		includeIDs:   opts.IncludeIDs,
		skipGeometry: opts.SkipGeometry,
		seen:         make(map[*Element]bool),
		diags:        diags,
	}

	var roots []models.LayoutContainer
	for _, zone := range zones.ChildrenNamed("zone") {
		if c, ok := w.walk(zone, 1); ok {
			roots = append(roots, c)
		}
	}
	return roots
}

type layoutWalker struct {
	entity       string
	maxDepth     int
	includeIDs   bool
	skipGeometry bool
	seen         map[*Element]bool
	diags        *Diagnostics
}

func (w *layoutWalker) walk(zone *Element, depth int) (models.LayoutContainer, bool) {
	if zone == nil {
		return models.LayoutContainer{}, false
	}

	c := models.LayoutContainer{
		Type:  ClassifyContainerType(zone.AttrDefault("type", ""), zone.AttrDefault("param", "")),
		Title: zone.AttrPtr("name"),
	}
	if !w.skipGeometry {
		c.Position = zoneRect(zone)
	}
	if w.includeIDs {
		c.ID = zone.AttrDefault("id", "")
	}
	if name, ok := zone.Attr("name"); ok && c.Type == models.ContainerLeaf {
		// A leaf zone naming a sheet hosts that worksheet.
		c.WorksheetName = &name
	}

	children := zone.ChildrenNamed("zone")
	if len(children) == 0 {
		return c, true
	}

	if w.seen[zone] {
		w.diags.Warnf(models.DiagStructuralAnomaly, w.entity,
			"cyclic container nesting at zone %q; truncated to leaf", zone.AttrDefault("id", "?"))
		return c, true
	}
	if depth >= w.maxDepth {
		w.diags.Warnf(models.DiagStructuralAnomaly, w.entity,
			"container nesting exceeds depth bound %d; truncated to leaf", w.maxDepth)
		return c, true
	}

	w.seen[zone] = true
	for _, child := range children {
		if cc, ok := w.walk(child, depth+1); ok {
			c.Children = append(c.Children, cc)
		}
	}
	return c, true
}

// ClassifyContainerType maps a zone's type/param attributes onto the closed
// container-type set. Unrecognized types default to leaf.
func ClassifyContainerType(zoneType, param string) models.ContainerType {
	t := strings.ToLower(zoneType)
	p := strings.ToLower(param)

	switch {
	case strings.Contains(t, "device"):
		return models.ContainerDeviceZone
	case strings.Contains(t, "horz"), strings.Contains(t, "horizontal"):
		return models.ContainerHorizontal
	case strings.Contains(t, "vert"), strings.Contains(t, "vertical"):
		return models.ContainerVertical
	case strings.Contains(t, "flow"):
		switch {
		case strings.Contains(p, "horz"), strings.Contains(p, "horizontal"):
			return models.ContainerHorizontal
		case strings.Contains(p, "vert"), strings.Contains(p, "vertical"):
			return models.ContainerVertical
		default:
			return models.ContainerFlow
		}
	default:
		return models.ContainerLeaf
	}
}

// zoneRect reads the declared rectangle. Geometry is emitted only when all
// four coordinates are present and numeric, so a partially declared rectangle
// stays absent rather than defaulting to zero.
func zoneRect(zone *Element) *models.Rect {
	x, okX := zoneInt(zone, "x")
	y, okY := zoneInt(zone, "y")
	w, okW := zoneInt(zone, "w")
	h, okH := zoneInt(zone, "h")
	if !okX || !okY || !okW || !okH {
		return nil
	}
	return &models.Rect{X: x, Y: y, Width: w, Height: h}
}

func zoneInt(zone *Element, attr string) (int, bool) {
	v, ok := zone.Attr(attr)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
