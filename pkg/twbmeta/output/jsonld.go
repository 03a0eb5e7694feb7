// Package output serializes extracted workbook metadata into the canonical
// JSON-LD document.
//
// Serialization is a pure projection of the entity graph: struct field order
// fixes key order, slices keep extraction order, and absent optional fields
// are omitted rather than emitted as null. Serializing the same workbook
// twice therefore produces byte-identical output.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

// ToJSON serializes a workbook to its canonical JSON-LD document.
func ToJSON(wb *models.Workbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// WorksheetToJSON serializes a single worksheet, for per-sheet output files.
func WorksheetToJSON(ws *models.Worksheet, pretty bool) ([]byte, error) {
	return marshal(ws, pretty)
}

// DiagnosticsToJSON serializes the diagnostics list of a parse.
func DiagnosticsToJSON(diags []models.Diagnostic, pretty bool) ([]byte, error) {
	if diags == nil {
		diags = []models.Diagnostic{}
	}
	return marshal(diags, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder appends a trailing newline; canonical output keeps it off.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
