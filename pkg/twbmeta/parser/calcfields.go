package parser

import (
	"strings"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// ExtractCalculatedFields collects every calculated-field definition under
// the given scope element (a worksheet or a datasource), in document order.
// A column qualifies when it carries a <calculation> child with a formula.
func ExtractCalculatedFields(scope *Element) []models.CalculatedField {
	var fields []models.CalculatedField
	for _, column := range scope.FindAll("column") {
		if cf, ok := extractColumnCalculation(column); ok {
			fields = append(fields, cf)
		}
	}
	return fields
}

func extractColumnCalculation(column *Element) (models.CalculatedField, bool) {
	name, ok := column.Attr("name")
	if !ok || name == "" {
		return models.CalculatedField{}, false
	}
	calculation := column.Child("calculation")
	if calculation == nil {
		return models.CalculatedField{}, false
	}
	formula, ok := calculation.Attr("formula")
	if !ok || formula == "" {
		return models.CalculatedField{}, false
	}

	cf := models.CalculatedField{
		Name:      CleanFieldName(name),
		Formula:   formula,
		Caption:   column.AttrPtr("caption"),
		Comment:   calculation.AttrPtr("comment"),
		Datatype:  column.AttrPtr("datatype"),
		Role:      column.AttrPtr("role"),
		FieldType: column.AttrPtr("type"),
		Hidden:    column.AttrDefault("hidden", "") == "true",
	}

	lodType, scope := ClassifyLOD(formula)
	if lodType != models.LODNone {
		cf.IsLOD = true
		cf.LODType = lodType
		cf.LODScope = scope
	}
	return cf, true
}

// ClassifyLOD classifies a formula's level-of-detail semantics. Only the
// outermost expression governs the result: after stripping leading whitespace
// and comments, the formula must open with "{" followed by FIXED, INCLUDE or
// EXCLUDE and a colon-delimited clause. An LOD expression nested inside
// another expression's arguments does not classify the field, which keeps
// fields that merely wrap or reference an LOD field out of the LOD set.
//
// The returned scope is the dimension list preceding the colon, in
// declaration order, bracket quoting trimmed, de-duplicated by exact name.
func ClassifyLOD(formula string) (models.LODType, []string) {
	s := stripLeadingTrivia(formula)
	if !strings.HasPrefix(s, "{") {
		return models.LODNone, nil
	}
	s = stripLeadingTrivia(s[1:])

	lodType := matchLODKeyword(s)
	if lodType == models.LODNone {
		return models.LODNone, nil
	}
	s = s[len(lodType):]

	// The keyword must be delimited; "{FIXEDX" is an identifier, not LOD.
	if s != "" && !isLODDelimiter(s[0]) {
		return models.LODNone, nil
	}

	clause, ok := scanToTopLevelColon(s)
	if !ok {
		return models.LODNone, nil
	}
	return lodType, parseScopeList(clause)
}

func matchLODKeyword(s string) models.LODType {
	for _, t := range []models.LODType{models.LODFixed, models.LODInclude, models.LODExclude} {
		kw := string(t)
		if len(s) >= len(kw) && strings.EqualFold(s[:len(kw)], kw) {
			return t
		}
	}
	return models.LODNone
}

func isLODDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ':', '[', '/':
		return true
	}
	return false
}

// stripLeadingTrivia removes leading whitespace, // line comments and
// /* */ block comments, repeatedly.
func stripLeadingTrivia(s string) string {
	for {
		trimmed := strings.TrimLeft(s, " \t\r\n")
		switch {
		case strings.HasPrefix(trimmed, "//"):
			idx := strings.IndexByte(trimmed, '\n')
			if idx < 0 {
				return ""
			}
			s = trimmed[idx+1:]
		case strings.HasPrefix(trimmed, "/*"):
			idx := strings.Index(trimmed[2:], "*/")
			if idx < 0 {
				return ""
			}
			s = trimmed[2+idx+2:]
		default:
			return trimmed
		}
	}
}

// scanToTopLevelColon returns the text preceding the first colon that sits
// outside bracket-quoted names and nested braces.
func scanToTopLevelColon(s string) (string, bool) {
	depth := 0
	inBracket := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			inBracket = true
		case ']':
			inBracket = false
		case '{':
			if !inBracket {
				depth++
			}
		case '}':
			if !inBracket {
				if depth == 0 {
					// Closing brace before any colon: no dimension clause.
					return "", false
				}
				depth--
			}
		case ':':
			if !inBracket && depth == 0 {
				return s[:i], true
			}
		}
	}
	return "", false
}

// parseScopeList splits a dimension clause on commas outside bracket quoting,
// trims each entry, strips brackets, and de-duplicates preserving order.
func parseScopeList(clause string) []string {
	var scope []string
	seen := make(map[string]bool)

	start := 0
	inBracket := false
	flush := func(end int) {
		name := strings.TrimSpace(clause[start:end])
		name = CleanFieldName(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		scope = append(scope, name)
	}
	for i := 0; i < len(clause); i++ {
		switch clause[i] {
		case '[':
			inBracket = true
		case ']':
			inBracket = false
		case ',':
			if !inBracket {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(clause))
	return scope
}
