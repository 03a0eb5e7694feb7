package parser

import (
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// ExtractWorksheetFilters collects the filters configured on a worksheet's
// filter shelf, in document order.
func ExtractWorksheetFilters(worksheet *Element, worksheetName string, diags *Diagnostics) []models.FilterConfig {
	shelf := worksheet.Find("filters")
	if shelf == nil {
		return nil
	}
	var filters []models.FilterConfig
	entity := "worksheet/" + worksheetName
	for _, el := range shelf.FindAll("filter") {
		if fc, ok := extractFilter(el, entity, diags); ok {
			filters = append(filters, fc)
		}
	}
	return filters
}

// ExtractDashboardFilters collects filters hosted in a dashboard's own
// filter zones.
func ExtractDashboardFilters(dashboard *Element, dashboardName string, diags *Diagnostics) []models.FilterConfig {
	zones := dashboard.Find("zones")
	if zones == nil {
		return nil
	}
	var filters []models.FilterConfig
	entity := "dashboard/" + dashboardName
	for _, zone := range zones.FindAll("zone") {
		if zone.AttrDefault("type", "") != "filter" {
			continue
		}
		el := zone.Find("filter")
		if el == nil {
			continue
		}
		if fc, ok := extractFilter(el, entity, diags); ok {
			fc.Scope = models.ScopeDashboard
			filters = append(filters, fc)
		}
	}
	return filters
}

func extractFilter(el *Element, entity string, diags *Diagnostics) (models.FilterConfig, bool) {
	fieldName := el.AttrDefault("column", "")
	if fieldName == "" {
		fieldName = el.AttrDefault("name", "")
	}
	if fieldName == "" {
		return models.FilterConfig{}, false
	}

	fc := models.FilterConfig{
		Field:        CleanFieldName(fieldName),
		Type:         ClassifyFilterType(el),
		Scope:        models.ScopeWorksheet,
		Customizable: el.AttrDefault("customizable", "") == "true",
		ShowControls: el.AttrDefault("show-controls", "") != "false",
	}
	if el.AttrDefault("global", "") == "true" {
		fc.Scope = models.ScopeDashboard
	}

	switch fc.Type {
	case models.FilterCategorical:
		extractMemberValues(el, &fc)
	case models.FilterQuantitative:
		fc.Range = extractRange(el, "min", "max")
	case models.FilterDate:
		fc.Range = extractRange(el, "min-date", "max-date")
	case models.FilterRelativeDate:
		fc.RelativePeriod = extractRelativePeriod(el)
	case models.FilterUnknown:
		diags.Warnf(models.DiagClassificationAmbiguity, entity,
			"filter on %q matched no known domain; classified unknown", fc.Field)
	}

	return fc, true
}

// ClassifyFilterType determines the filter kind from the declared domain.
// An explicit class attribute wins; otherwise an enumerated member list
// classifies categorical (and takes priority over a simultaneously present
// range), a date-bound pair classifies date, a numeric bound pair classifies
// quantitative, and anything else degrades to unknown.
func ClassifyFilterType(el *Element) models.FilterType {
	switch el.AttrDefault("class", "") {
	case "categorical":
		return models.FilterCategorical
	case "quantitative":
		return models.FilterQuantitative
	case "relative-date":
		return models.FilterRelativeDate
	}

	if gf := el.Find("groupfilter"); gf != nil {
		return models.FilterCategorical
	}
	if el.Find("relative-date") != nil {
		return models.FilterRelativeDate
	}
	if el.Find("min-date") != nil || el.Find("max-date") != nil {
		return models.FilterDate
	}
	if el.Find("min") != nil || el.Find("max") != nil {
		return models.FilterQuantitative
	}
	return models.FilterUnknown
}

// extractMemberValues reads the member list of a categorical filter. A
// groupfilter with function "except" is an exclusion list; "all" is the
// show-all selection.
func extractMemberValues(el *Element, fc *models.FilterConfig) {
	gf := el.Find("groupfilter")
	if gf == nil {
		return
	}
	switch gf.AttrDefault("function", "") {
	case "except":
		fc.Exclude = true
		fc.ExcludedValues = memberList(gf)
	case "all":
		fc.ShowAll = true
	default:
		fc.Values = memberList(gf)
	}
}

func memberList(gf *Element) []string {
	var values []string
	for _, member := range gf.FindAll("member") {
		if v, ok := member.Attr("value"); ok {
			values = append(values, v)
		}
	}
	return values
}

// extractRange reads a bound pair, treating an absent bound as open-ended.
// Returns nil when neither bound is declared.
func extractRange(el *Element, minName, maxName string) *models.FilterRange {
	var r models.FilterRange
	if minEl := el.Find(minName); minEl != nil {
		v := minEl.TrimmedText()
		r.Min = &v
	}
	if maxEl := el.Find(maxName); maxEl != nil {
		v := maxEl.TrimmedText()
		r.Max = &v
	}
	if r.Min == nil && r.Max == nil {
		return nil
	}
	return &r
}

func extractRelativePeriod(el *Element) *string {
	if period, ok := el.Attr("period"); ok {
		return &period
	}
	rel := el.Find("relative-date")
	if rel == nil {
		return nil
	}
	period, okP := rel.Attr("period")
	quantity, okQ := rel.Attr("quantity")
	if okP && okQ {
		combined := quantity + " " + period
		return &combined
	}
	if okP {
		return &period
	}
	return nil
}
