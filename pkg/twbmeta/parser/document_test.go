package parser

import (
	"errors"
	"testing"
)

func mustLoad(t *testing.T, xml string) *Document {
	t.Helper()
	doc, err := Load([]byte(xml))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

func TestLoadSimpleWorkbook(t *testing.T) {
	doc := mustLoad(t, `<?xml version='1.0' encoding='utf-8' ?>
<workbook version='18.1'>
  <worksheets>
    <worksheet name='Sheet1' />
  </worksheets>
</workbook>`)

	if doc.Version != "18.1" {
		t.Errorf("Version = %q, want 18.1", doc.Version)
	}
	if doc.Root.Name != "workbook" {
		t.Errorf("Root.Name = %q, want workbook", doc.Root.Name)
	}
	ws := doc.Root.Child("worksheets").Child("worksheet")
	if ws == nil {
		t.Fatal("worksheet element not found")
	}
	if got := ws.AttrDefault("name", ""); got != "Sheet1" {
		t.Errorf("worksheet name = %q, want Sheet1", got)
	}
}

func TestLoadMalformedMarkup(t *testing.T) {
	_, err := Load([]byte(`<workbook version='18.1'><worksheets>`))
	if err == nil {
		t.Fatal("expected error for truncated document")
	}
	var me *MalformedDocumentError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedDocumentError, got %T: %v", err, err)
	}
}

func TestLoadMalformedSyntaxHasLine(t *testing.T) {
	_, err := Load([]byte("<workbook>\n  <worksheet name='a'>\n  </oops>\n</workbook>"))
	var me *MalformedDocumentError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedDocumentError, got %T: %v", err, err)
	}
	if me.Line == 0 {
		t.Errorf("expected a line number on syntax error, got %+v", me)
	}
}

func TestLoadMissingWorkbookRoot(t *testing.T) {
	_, err := Load([]byte(`<dashboard name='x' />`))
	if !errors.Is(err, ErrMissingRoot) {
		t.Fatalf("expected ErrMissingRoot, got %v", err)
	}
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(nil)
	var me *MalformedDocumentError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedDocumentError, got %T: %v", err, err)
	}
}

func TestDeclaredOrAssumedVersion(t *testing.T) {
	doc := mustLoad(t, `<workbook />`)
	version, degraded := doc.DeclaredOrAssumedVersion()
	if !degraded {
		t.Error("expected degraded mode for missing version")
	}
	if version != OldestSupportedVersion {
		t.Errorf("assumed version = %q, want %q", version, OldestSupportedVersion)
	}

	doc = mustLoad(t, `<workbook version='10.5' />`)
	version, degraded = doc.DeclaredOrAssumedVersion()
	if degraded || version != "10.5" {
		t.Errorf("got (%q, %v), want (10.5, false)", version, degraded)
	}
}

func TestVersionNewerThanKnown(t *testing.T) {
	tests := []struct {
		version string
		newer   bool
	}{
		{"18.1", false},
		{"18.2", true},
		{"19.0", true},
		{"17.9", false},
		{"8.0", false},
		{"not-a-version", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := VersionNewerThanKnown(tt.version); got != tt.newer {
			t.Errorf("VersionNewerThanKnown(%q) = %v, want %v", tt.version, got, tt.newer)
		}
	}
}

func TestElementAccessorsNilSafe(t *testing.T) {
	var e *Element
	if _, ok := e.Attr("name"); ok {
		t.Error("Attr on nil element reported presence")
	}
	if e.AttrDefault("name", "fallback") != "fallback" {
		t.Error("AttrDefault on nil element did not fall back")
	}
	if e.AttrPtr("name") != nil {
		t.Error("AttrPtr on nil element returned non-nil")
	}
	if e.Child("x") != nil || e.Find("x") != nil {
		t.Error("child lookup on nil element returned non-nil")
	}
	if got := e.FindAll("x"); got != nil {
		t.Errorf("FindAll on nil element = %v, want nil", got)
	}
	if e.TrimmedText() != "" {
		t.Error("TrimmedText on nil element returned text")
	}
}

func TestFindAllDepthFirstOrder(t *testing.T) {
	doc := mustLoad(t, `<workbook>
  <a><field n='1'/><b><field n='2'/></b></a>
  <field n='3'/>
</workbook>`)

	fields := doc.Root.FindAll("field")
	if len(fields) != 3 {
		t.Fatalf("len(fields) = %d, want 3", len(fields))
	}
	for i, want := range []string{"1", "2", "3"} {
		if got := fields[i].AttrDefault("n", ""); got != want {
			t.Errorf("fields[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestCleanFieldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[Region]", "Region"},
		{"Region", "Region"},
		{"[Calculation_123]", "Calculation_123"},
		{"[]", ""},
		{"[unclosed", "[unclosed"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanFieldName(tt.in); got != tt.want {
			t.Errorf("CleanFieldName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
