// Package models defines the metadata entities extracted from Tableau workbooks.
package models

import (
	"github.com/tiendc/go-deepcopy"
)

// SchemaContext is the JSON-LD context URI emitted on every canonical document.
const SchemaContext = "https://schema.org/"

// SchemaType is the JSON-LD type emitted on every canonical document.
const SchemaType = "Dataset"

// Workbook is the root aggregate for one extracted workbook.
// It is created once per parse and never mutated afterwards; the field order
// below is the canonical serialization order.
type Workbook struct {
	// Context is the JSON-LD context URI (always SchemaContext).
	Context string `json:"@context"`
	// Type is the JSON-LD node type (always SchemaType).
	Type string `json:"@type"`
	// Name is the workbook name (usually the file stem).
	Name string `json:"name"`
	// Version is the format version declared on the workbook root element.
	// Empty when the document declares none.
	Version string `json:"version,omitempty"`
	// DateExtracted is the extraction timestamp in RFC 3339 / ISO-8601 form.
	DateExtracted string `json:"dateExtracted"`
	// Worksheets in document order.
	Worksheets []Worksheet `json:"worksheets"`
	// Dashboards in document order.
	Dashboards []Dashboard `json:"dashboards"`
	// Stories in document order.
	Stories []Story `json:"stories"`
	// DataSources declared at the workbook level, in document order.
	DataSources []DataSource `json:"dataSources"`
	// Parameters declared anywhere in the workbook, in document order.
	Parameters []Parameter `json:"parameters"`
}

// Clone returns a deep copy of the workbook. Entities are immutable by
// convention, so consumers that hand the graph to concurrent pipelines can
// clone once instead of sharing.
func (w *Workbook) Clone() (*Workbook, error) {
	if w == nil {
		return nil, nil
	}
	dst := &Workbook{}
	if err := deepcopy.Copy(dst, w); err != nil {
		return nil, err
	}
	return dst, nil
}

// WorksheetNames returns the worksheet names in declaration order.
func (w *Workbook) WorksheetNames() []string {
	names := make([]string, 0, len(w.Worksheets))
	for _, ws := range w.Worksheets {
		names = append(names, ws.Name)
	}
	return names
}

// DashboardNames returns the dashboard names in declaration order.
func (w *Workbook) DashboardNames() []string {
	names := make([]string, 0, len(w.Dashboards))
	for _, d := range w.Dashboards {
		names = append(names, d.Name)
	}
	return names
}
