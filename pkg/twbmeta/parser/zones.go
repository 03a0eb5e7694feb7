package parser

import (
	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// marksEncodings are the encoding shelves hosted by the marks card.
var marksEncodings = []string{"color", "size", "text", "label", "tooltip", "detail", "shape", "path"}

// ExtractZones reconstructs the shelf/zone tree of one worksheet. The root is
// the worksheet's top-level pane; children are the shelves in a fixed,
// render-meaningful order (rows, columns, filters, pages, marks). Returns nil
// when the worksheet declares no table structure.
func ExtractZones(worksheet *Element) *models.Zone {
	table := worksheet.Find("table")
	if table == nil {
		return nil
	}

	root := &models.Zone{
		Role: models.RoleUnclassified,
		Name: "table",
	}

	appendShelf(root, table.Find("rows"), "rows")
	appendShelf(root, table.Find("cols"), "cols")
	appendShelf(root, worksheet.Find("filters"), "filters")
	appendShelf(root, worksheet.Find("pages"), "pages")

	if marks := worksheet.Find("marks"); marks != nil {
		marksZone := models.Zone{
			Role: models.RoleMarks,
			Name: "marks",
		}
		for _, encoding := range marksEncodings {
			enc := marks.Find(encoding)
			if enc == nil {
				continue
			}
			child := models.Zone{
				Role:   models.RoleMarks,
				Name:   encoding,
				Fields: shelfFields(enc),
			}
			if len(child.Fields) > 0 {
				marksZone.Children = append(marksZone.Children, child)
			}
		}
		if len(marksZone.Children) > 0 {
			root.Children = append(root.Children, marksZone)
		}
	}

	return root
}

func appendShelf(root *models.Zone, shelf *Element, name string) {
	if shelf == nil {
		return
	}
	zone := models.Zone{
		Role:   ClassifyShelfRole(name),
		Name:   name,
		Fields: shelfFields(shelf),
	}
	if len(zone.Fields) > 0 {
		root.Children = append(root.Children, zone)
	}
}

// shelfFields captures the field references placed on a shelf, in declared
// order and without de-duplication: repeated fields govern stacking in the
// rendered chart and are legitimate.
func shelfFields(shelf *Element) []string {
	var fields []string
	for _, field := range shelf.FindAll("field") {
		name := field.TrimmedText()
		if name == "" {
			name = field.AttrDefault("name", "")
		}
		if name != "" {
			fields = append(fields, CleanFieldName(name))
		}
	}
	return fields
}

// ClassifyShelfRole maps a shelf element name onto the closed shelf-role set.
// Unrecognized names map to unclassified rather than being dropped.
func ClassifyShelfRole(name string) models.ShelfRole {
	switch name {
	case "rows":
		return models.RoleRows
	case "cols", "columns":
		return models.RoleColumns
	case "filters":
		return models.RoleFilters
	case "pages":
		return models.RolePages
	case "marks":
		return models.RoleMarks
	default:
		return models.RoleUnclassified
	}
}
