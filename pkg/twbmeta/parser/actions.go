package parser

import (
	"strings"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// ExtractActions collects the actions declared by one dashboard, in document
// order. knownSheets is the dashboard's declared worksheet order; an action
// whose applicability says "all worksheets" is expanded to that list at
// extraction time.
func ExtractActions(dashboard *Element, dashboardName string, knownSheets []string, diags *Diagnostics) []models.DashboardAction {
	actionsEl := dashboard.Find("actions")
	if actionsEl == nil {
		return nil
	}
	var actions []models.DashboardAction
	for _, el := range actionsEl.Children {
		if a, ok := extractAction(el, dashboardName, knownSheets, diags); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

func extractAction(el *Element, dashboardName string, knownSheets []string, diags *Diagnostics) (models.DashboardAction, bool) {
	name, ok := el.Attr("name")
	if !ok || name == "" {
		return models.DashboardAction{}, false
	}
	entity := "dashboard/" + dashboardName + "/action/" + name

	a := models.DashboardAction{
		Name:    name,
		Type:    ClassifyActionType(el.Name),
		Enabled: el.AttrDefault("enabled", "") != "false",
	}
	a.SourceSheets = extractSheets(el.Find("source"), knownSheets)
	a.TargetSheets = extractSheets(el.Find("target"), knownSheets)

	switch a.Type {
	case models.ActionFilter:
		a.FieldMappings, a.Fields = extractFieldMappings(el.Find("filter"), entity, diags)
	case models.ActionHighlight:
		a.FieldMappings, a.Fields = extractFieldMappings(el.Find("highlight"), entity, diags)
	case models.ActionURL:
		a.URLTemplate = extractURLTemplate(el)
		a.Fields = extractURLFields(el)
	case models.ActionNavigation:
		// Target sheets above carry the destination.
	case models.ActionParameter:
		if param := el.Find("parameter"); param != nil {
			if pname, ok := param.Attr("name"); ok {
				cleaned := CleanFieldName(pname)
				a.ParameterName = &cleaned
			}
			if src, ok := param.Attr("source-field"); ok {
				cleaned := CleanFieldName(src)
				a.ValueSource = &cleaned
			} else if v, ok := param.Attr("value"); ok {
				a.ValueSource = &v
			}
		}
	case models.ActionUnknown:
		diags.Warnf(models.DiagClassificationAmbiguity, entity,
			"action element <%s> matched no known action type", el.Name)
	}

	return a, true
}

// DashboardWorksheetNames returns the worksheets a dashboard hosts, in the
// dashboard's declared order: zone names matching a known workbook worksheet,
// de-duplicated, in document order. This is the list an "all worksheets"
// action applicability expands to.
func DashboardWorksheetNames(dashboard *Element, workbookSheets map[string]bool) []string {
	var names []string
	seen := make(map[string]bool)
	for _, zone := range dashboard.FindAll("zone") {
		name, ok := zone.Attr("name")
		if !ok || !workbookSheets[name] || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// ClassifyActionType maps an action element's tag name onto the closed
// action-type set. Unrecognized tags classify unknown rather than being
// dropped.
func ClassifyActionType(tag string) models.ActionType {
	t := strings.ToLower(tag)
	switch {
	case strings.Contains(t, "highlight"):
		return models.ActionHighlight
	case strings.Contains(t, "filter"):
		return models.ActionFilter
	case strings.Contains(t, "url"):
		return models.ActionURL
	case strings.Contains(t, "sheet"), strings.Contains(t, "navigate"):
		return models.ActionNavigation
	case strings.Contains(t, "parameter"):
		return models.ActionParameter
	default:
		return models.ActionUnknown
	}
}

// extractSheets reads the worksheet/dashboard names an applicability element
// declares. When it names none and carries all="true", the dashboard's full
// known worksheet list is substituted, in the dashboard's declared order.
func extractSheets(el *Element, knownSheets []string) []string {
	if el == nil {
		return nil
	}
	var sheets []string
	for _, c := range el.Children {
		switch c.Name {
		case "worksheet", "dashboard":
			if name, ok := c.Attr("name"); ok {
				sheets = append(sheets, name)
			}
		}
	}
	if len(sheets) == 0 && el.AttrDefault("all", "") == "true" {
		sheets = append(sheets, knownSheets...)
	}
	return sheets
}

// extractFieldMappings pairs source fields with target fields positionally.
// When the arities differ, as many pairs as possible are zipped, the
// remainder is kept as unpaired field references, and the mismatch is
// reported as a warning rather than dropped silently.
func extractFieldMappings(el *Element, entity string, diags *Diagnostics) ([]models.FieldMapping, []string) {
	if el == nil {
		return nil, nil
	}

	sources := fieldNames(el.FindAll("source-field"))
	targets := fieldNames(el.FindAll("target-field"))

	n := len(sources)
	if len(targets) < n {
		n = len(targets)
	}
	var mappings []models.FieldMapping
	for i := 0; i < n; i++ {
		mappings = append(mappings, models.FieldMapping{Source: sources[i], Target: targets[i]})
	}

	var leftover []string
	if len(sources) != len(targets) {
		leftover = append(leftover, sources[n:]...)
		leftover = append(leftover, targets[n:]...)
		diags.Warnf(models.DiagStructuralAnomaly, entity,
			"field mapping arity mismatch: %d source fields vs %d target fields", len(sources), len(targets))
	}

	// Plain field references without pairing semantics.
	leftover = append(leftover, fieldNames(el.FindAll("field"))...)

	return mappings, leftover
}

func fieldNames(els []*Element) []string {
	var names []string
	for _, el := range els {
		name := el.AttrDefault("name", "")
		if name == "" {
			name = el.TrimmedText()
		}
		if name != "" {
			names = append(names, CleanFieldName(name))
		}
	}
	return names
}

func extractURLTemplate(el *Element) *string {
	urlEl := el.Find("url")
	if urlEl == nil {
		return nil
	}
	// The template is kept verbatim, unresolved placeholders included.
	template := urlEl.TrimmedText()
	if template == "" {
		template = urlEl.AttrDefault("value", "")
	}
	if template == "" {
		return nil
	}
	return &template
}

func extractURLFields(el *Element) []string {
	urlEl := el.Find("url")
	if urlEl == nil {
		return nil
	}
	var fields []string
	for _, encode := range urlEl.FindAll("url-encode") {
		if f, ok := encode.Attr("field"); ok {
			fields = append(fields, CleanFieldName(f))
		}
	}
	return fields
}
