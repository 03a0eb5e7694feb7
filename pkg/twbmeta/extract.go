package twbmeta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/parser"
)

// now is overridden in tests to provide deterministic timestamps.
var now = time.Now

// Parse extracts the metadata graph from raw workbook XML bytes.
//
// The pipeline is one-shot and synchronous: the loader builds one immutable
// tree, each extractor traverses it independently, and the results merge
// under a single workbook identity. Recoverable conditions are returned as
// diagnostics next to the workbook; a fatal malformed document yields a
// *MalformedDocumentError and no partial metadata.
//
// Separate calls never share state, so independent documents may be parsed
// in parallel from different goroutines.
func Parse(data []byte, opts Options) (*models.Workbook, []models.Diagnostic, error) {
	doc, err := parser.Load(data)
	if err != nil {
		return nil, nil, err
	}

	diags := &parser.Diagnostics{}
	if _, degraded := doc.DeclaredOrAssumedVersion(); degraded {
		diags.Infof(models.DiagUnsupportedVersion, "workbook",
			"no declared format version; assuming %s and extracting in degraded mode", parser.OldestSupportedVersion)
	} else if parser.VersionNewerThanKnown(doc.Version) {
		diags.Warnf(models.DiagUnsupportedVersion, "workbook",
			"declared version %s is newer than known schema %s; extracting best-effort", doc.Version, parser.LatestKnownVersion)
	}

	wb := &models.Workbook{
		Context:       models.SchemaContext,
		Type:          models.SchemaType,
		Name:          opts.WorkbookName,
		Version:       doc.Version,
		DateExtracted: now().UTC().Format(time.RFC3339),
		Worksheets:    []models.Worksheet{},
		Dashboards:    []models.Dashboard{},
		Stories:       []models.Story{},
		DataSources:   []models.DataSource{},
		Parameters:    []models.Parameter{},
	}

	worksheetEls := topLevelNamed(doc.Root, "worksheets", "worksheet")
	dashboardEls := topLevelNamed(doc.Root, "dashboards", "dashboard")

	for _, wsEl := range worksheetEls {
		name, ok := wsEl.Attr("name")
		if !ok || name == "" {
			continue
		}
		ws := models.Worksheet{
			Name:             name,
			Caption:          wsEl.AttrPtr("caption"),
			CalculatedFields: []models.CalculatedField{},
			Filters:          []models.FilterConfig{},
		}
		ws.CalculatedFields = append(ws.CalculatedFields, parser.ExtractCalculatedFields(wsEl)...)
		ws.Filters = append(ws.Filters, parser.ExtractWorksheetFilters(wsEl, name, diags)...)
		ws.Zones = parser.ExtractZones(wsEl)
		wb.Worksheets = append(wb.Worksheets, ws)
	}

	worksheetSet := make(map[string]bool, len(wb.Worksheets))
	for _, ws := range wb.Worksheets {
		worksheetSet[ws.Name] = true
	}

	layoutOpts := parser.LayoutOptions{
		MaxDepth:     opts.MaxLayoutDepth,
		IncludeIDs:   opts.ShouldIncludeZoneIDs(),
		SkipGeometry: !opts.ShouldIncludeGeometry(),
	}
	for _, dashEl := range dashboardEls {
		name, ok := dashEl.Attr("name")
		if !ok || name == "" {
			continue
		}
		dash := models.Dashboard{
			Name:             name,
			Caption:          dashEl.AttrPtr("caption"),
			LayoutContainers: []models.LayoutContainer{},
			Actions:          []models.DashboardAction{},
		}
		dash.LayoutContainers = append(dash.LayoutContainers, parser.ExtractLayoutContainers(dashEl, name, layoutOpts, diags)...)
		knownSheets := parser.DashboardWorksheetNames(dashEl, worksheetSet)
		dash.Actions = append(dash.Actions, parser.ExtractActions(dashEl, name, knownSheets, diags)...)
		dash.Filters = parser.ExtractDashboardFilters(dashEl, name, diags)
		wb.Dashboards = append(wb.Dashboards, dash)
	}

	known := parser.KnownNames{
		Worksheets: worksheetSet,
		Dashboards: make(map[string]bool, len(wb.Dashboards)),
	}
	for _, d := range wb.Dashboards {
		known.Dashboards[d.Name] = true
	}
	storyOpts := parser.StoryOptions{IncludeNarratives: opts.ShouldIncludeNarratives()}
	for _, storyEl := range topLevelNamed(doc.Root, "stories", "story") {
		if story, ok := parser.ExtractStory(storyEl, known, storyOpts, diags); ok {
			wb.Stories = append(wb.Stories, story)
		}
	}

	wb.DataSources = append(wb.DataSources, parser.ExtractDataSources(doc.Root, opts.ShouldIncludeConnections())...)
	wb.Parameters = append(wb.Parameters, parser.ExtractParameters(doc.Root)...)

	return wb, diags.List(), nil
}

// ParseFile extracts metadata from a .twb or .twbx file. The workbook name
// defaults to the file stem when the options leave it empty.
func ParseFile(path string, opts Options) (*models.Workbook, []models.Diagnostic, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	if opts.WorkbookName == "" {
		opts.WorkbookName = workbookStem(path)
	}

	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".twb":
		data, err = os.ReadFile(path)
	case ".twbx":
		data, err = ReadPackagedWorkbook(path)
	default:
		return nil, nil, fmt.Errorf("%w: %s (expected .twb or .twbx)", ErrUnsupportedFileType, path)
	}
	if err != nil {
		return nil, nil, err
	}

	return Parse(data, opts)
}

// topLevelNamed returns the elements under the named container when it
// exists; older documents without the container fall back to a whole-tree
// search, which is the degraded-mode behavior.
func topLevelNamed(root *parser.Element, container, child string) []*parser.Element {
	if c := root.Child(container); c != nil {
		return c.ChildrenNamed(child)
	}
	return root.FindAll(child)
}
