package parser

import (
	"strconv"
	"strings"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// KnownNames carries the already-extracted worksheet and dashboard name sets
// used to resolve story-point references.
type KnownNames struct {
	Worksheets map[string]bool
	Dashboards map[string]bool
}

// StoryOptions tune story extraction.
type StoryOptions struct {
	// IncludeNarratives controls whether narrative annotation text is
	// assembled for each point.
	IncludeNarratives bool
}

// ExtractStory extracts one story with its ordered points. Each point's
// order is the declared sequence position, not the encounter index, because
// the source may store points out of visual order and downstream consumers
// sort by order. Returns false when the element declares no name.
func ExtractStory(storyEl *Element, known KnownNames, opts StoryOptions, diags *Diagnostics) (models.Story, bool) {
	name, ok := storyEl.Attr("name")
	if !ok || name == "" {
		return models.Story{}, false
	}

	story := models.Story{
		StoryName:   name,
		Description: storyEl.AttrPtr("description"),
		Points:      []models.StoryPoint{},
	}

	pointsEl := storyEl.Find("story-points")
	if pointsEl == nil {
		return story, true
	}

	entity := "story/" + name
	for i, pointEl := range pointsEl.ChildrenNamed("story-point") {
		story.Points = append(story.Points, extractStoryPoint(pointEl, i, entity, known, opts, diags))
	}
	return story, true
}

func extractStoryPoint(pointEl *Element, encounterIndex int, entity string, known KnownNames, opts StoryOptions, diags *Diagnostics) models.StoryPoint {
	point := models.StoryPoint{
		Order:   declaredOrder(pointEl, encounterIndex),
		Caption: pointEl.AttrDefault("caption", "Story Point "+strconv.Itoa(encounterIndex+1)),
	}

	if opts.IncludeNarratives {
		if narrative := extractNarrativeText(pointEl); narrative != "" {
			point.NarrativeText = &narrative
		}
	}

	// A point references at most one of a worksheet or a dashboard.
	if wsName := extractSheetReference(pointEl, "worksheet"); wsName != "" {
		point.WorksheetName = &wsName
		if !known.Worksheets[wsName] {
			point.Unresolved = true
			diags.Warnf(models.DiagStructuralAnomaly, entity,
				"story point %d references unknown worksheet %q", point.Order, wsName)
		}
	} else if dashName := extractSheetReference(pointEl, "dashboard"); dashName != "" {
		point.DashboardName = &dashName
		if !known.Dashboards[dashName] {
			point.Unresolved = true
			diags.Warnf(models.DiagStructuralAnomaly, entity,
				"story point %d references unknown dashboard %q", point.Order, dashName)
		}
	}

	return point
}

// declaredOrder prefers the point's declared order attribute and falls back
// to the encounter index when the attribute is absent or not numeric.
func declaredOrder(pointEl *Element, encounterIndex int) int {
	if v, ok := pointEl.Attr("order"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return encounterIndex
}

// extractSheetReference resolves a point's reference to a worksheet or
// dashboard: a direct child element of that name, or a zone attribute.
func extractSheetReference(pointEl *Element, kind string) string {
	if ref := pointEl.Find(kind); ref != nil {
		if name, ok := ref.Attr("name"); ok {
			return name
		}
	}
	for _, zone := range pointEl.FindAll("zone") {
		if name, ok := zone.Attr(kind); ok && name != "" {
			return name
		}
	}
	return ""
}

// extractNarrativeText assembles the narrative annotations of a story point:
// text zones, formatted-text runs and caption annotations, joined with blank
// lines in document order.
func extractNarrativeText(pointEl *Element) string {
	var parts []string

	for _, zone := range pointEl.FindAll("zone") {
		if zone.AttrDefault("type", "") == "text" {
			if textEl := zone.Find("text"); textEl != nil {
				if t := textEl.TrimmedText(); t != "" {
					parts = append(parts, t)
				}
			}
		}
		if formatted := zone.Find("formatted-text"); formatted != nil {
			for _, run := range formatted.FindAll("run") {
				if t := run.TrimmedText(); t != "" {
					parts = append(parts, t)
				}
			}
		}
	}

	for _, annotation := range pointEl.FindAll("annotation") {
		if t, ok := annotation.Attr("text"); ok {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}

	return strings.Join(parts, "\n\n")
}
