package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

func testWorkbook() *models.Workbook {
	return &models.Workbook{
		Context:       models.SchemaContext,
		Type:          models.SchemaType,
		Name:          "Sample",
		Version:       "18.1",
		DateExtracted: "2024-05-01T12:00:00Z",
		Worksheets: []models.Worksheet{
			{
				Name:             "Sales by Region",
				CalculatedFields: []models.CalculatedField{},
				Filters:          []models.FilterConfig{},
			},
		},
		Dashboards:  []models.Dashboard{},
		Stories:     []models.Story{},
		DataSources: []models.DataSource{},
		Parameters:  []models.Parameter{},
	}
}

func TestToJSONIdempotent(t *testing.T) {
	wb := testWorkbook()
	first, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	second, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("repeated serialization of the same workbook differs")
	}
}

func TestToJSONCanonicalShape(t *testing.T) {
	data, err := ToJSON(testWorkbook(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	out := string(data)

	if !strings.HasPrefix(out, `{"@context":"https://schema.org/","@type":"Dataset"`) {
		t.Errorf("identity keys not first: %s", out[:60])
	}
	if strings.Contains(out, "null") {
		t.Errorf("absent optionals serialized as null: %s", out)
	}
	// Empty collections stay present as empty arrays.
	if !strings.Contains(out, `"dashboards":[]`) {
		t.Errorf("empty dashboards omitted: %s", out)
	}
	if strings.HasSuffix(out, "\n") {
		t.Error("trailing newline in canonical output")
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["caption"]; ok {
		t.Error("undeclared caption emitted")
	}
}

func TestToJSONOmitsAbsentOptionals(t *testing.T) {
	wb := testWorkbook()
	caption := "Regional Sales"
	wb.Worksheets[0].Caption = &caption

	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"caption":"Regional Sales"`) {
		t.Errorf("declared caption missing: %s", data)
	}

	empty := ""
	wb.Worksheets[0].Caption = &empty
	data, err = ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	// Declared-but-empty differs from absent: the key survives.
	if !strings.Contains(string(data), `"caption":""`) {
		t.Errorf("declared empty caption dropped: %s", data)
	}
}

func TestToJSONNoHTMLEscaping(t *testing.T) {
	wb := testWorkbook()
	template := "https://example.com/search?q=<Product>&lang=en"
	wb.Dashboards = []models.Dashboard{
		{
			Name:             "D",
			LayoutContainers: []models.LayoutContainer{},
			Actions: []models.DashboardAction{
				{Name: "Lookup", Type: models.ActionURL, Enabled: true, URLTemplate: &template},
			},
		},
	}

	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), template) {
		t.Errorf("URL template mangled by HTML escaping: %s", data)
	}
}

func TestToJSONPretty(t *testing.T) {
	compact, err := ToJSON(testWorkbook(), false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	pretty, err := ToJSON(testWorkbook(), true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Error("compact output contains newlines")
	}
	if !bytes.Contains(pretty, []byte("\n  ")) {
		t.Error("pretty output not indented")
	}

	var a, b map[string]any
	if err := json.Unmarshal(compact, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(pretty, &b); err != nil {
		t.Fatal(err)
	}
	if len(a) != len(b) {
		t.Error("compact and pretty outputs carry different keys")
	}
}

func TestWorksheetToJSON(t *testing.T) {
	ws := &models.Worksheet{
		Name:             "Trend",
		CalculatedFields: []models.CalculatedField{},
		Filters:          []models.FilterConfig{},
	}
	data, err := WorksheetToJSON(ws, false)
	if err != nil {
		t.Fatalf("WorksheetToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), `"name":"Trend"`) {
		t.Errorf("output = %s", data)
	}
}

func TestDiagnosticsToJSON(t *testing.T) {
	data, err := DiagnosticsToJSON(nil, false)
	if err != nil {
		t.Fatalf("DiagnosticsToJSON failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("nil diagnostics = %s, want []", data)
	}

	diags := []models.Diagnostic{
		{Code: models.DiagStructuralAnomaly, Severity: models.SeverityWarning, Entity: "dashboard/D", Message: "cyclic container nesting"},
	}
	data, err = DiagnosticsToJSON(diags, false)
	if err != nil {
		t.Fatalf("DiagnosticsToJSON failed: %v", err)
	}
	if !strings.Contains(string(data), "structural-anomaly") {
		t.Errorf("output = %s", data)
	}
}
