package parser

import (
	"reflect"
	"testing"

	"github.com/metagraph-io/twbmeta/pkg/twbmeta/models"
)

func TestClassifyLOD(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		lodType models.LODType
		scope   []string
	}{
		{
			name:    "fixed single dimension",
			formula: "{FIXED [Region] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Region"},
		},
		{
			name:    "include",
			formula: "{INCLUDE [Customer Name] : AVG([Sales])}",
			lodType: models.LODInclude,
			scope:   []string{"Customer Name"},
		},
		{
			name:    "exclude without space before colon",
			formula: "{EXCLUDE [Region]: SUM([Sales])}",
			lodType: models.LODExclude,
			scope:   []string{"Region"},
		},
		{
			name:    "lowercase keyword",
			formula: "{ fixed [Region] : MIN([Order Date]) }",
			lodType: models.LODFixed,
			scope:   []string{"Region"},
		},
		{
			name:    "multiple dimensions keep declaration order",
			formula: "{FIXED [State], [City], [Region] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"State", "City", "Region"},
		},
		{
			name:    "duplicate dimensions collapse",
			formula: "{FIXED [Region], [Region] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Region"},
		},
		{
			name:    "empty dimension list",
			formula: "{FIXED : MIN([Order Date])}",
			lodType: models.LODFixed,
			scope:   nil,
		},
		{
			name:    "leading line comment",
			formula: "// per-region total\n{FIXED [Region] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Region"},
		},
		{
			name:    "leading block comment",
			formula: "/* note */ {FIXED [Region] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Region"},
		},
		{
			name:    "colon inside bracketed name stays in scope",
			formula: "{FIXED [Ratio: A/B] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Ratio: A/B"},
		},
		{
			name:    "unbracketed dimension name",
			formula: "{FIXED Region, [City] : SUM([Sales])}",
			lodType: models.LODFixed,
			scope:   []string{"Region", "City"},
		},
		{
			name:    "plain aggregate is not LOD",
			formula: "SUM([Sales])",
			lodType: models.LODNone,
		},
		{
			name:    "nested LOD does not classify the outer formula",
			formula: "SUM({FIXED [Region] : SUM([Sales])})",
			lodType: models.LODNone,
		},
		{
			name:    "keyword prefix of identifier is not LOD",
			formula: "{FIXEDX : 1}",
			lodType: models.LODNone,
		},
		{
			name:    "brace without keyword is not LOD",
			formula: "{ [Sales] }",
			lodType: models.LODNone,
		},
		{
			name:    "keyword without colon is not LOD",
			formula: "{FIXED [Region]}",
			lodType: models.LODNone,
		},
		{
			name:    "empty formula",
			formula: "",
			lodType: models.LODNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lodType, scope := ClassifyLOD(tt.formula)
			if lodType != tt.lodType {
				t.Errorf("lodType = %q, want %q", lodType, tt.lodType)
			}
			if !reflect.DeepEqual(scope, tt.scope) {
				t.Errorf("scope = %v, want %v", scope, tt.scope)
			}
		})
	}
}

func TestExtractCalculatedFields(t *testing.T) {
	doc := mustLoad(t, `<workbook version='18.1'>
  <worksheet name='Sheet1'>
    <column caption='Profit Ratio' datatype='real' name='[Calculation_1]' role='measure' type='quantitative'>
      <calculation class='tableau' formula='SUM([Profit])/SUM([Sales])' comment='margin' />
    </column>
    <column datatype='string' name='[Region]' role='dimension' type='nominal' />
    <nested>
      <column name='[Calculation_2]' hidden='true'>
        <calculation class='tableau' formula='{FIXED [Region] : SUM([Sales])}' />
      </column>
    </nested>
    <column name='[Broken]'>
      <calculation class='tableau' />
    </column>
  </worksheet>
</workbook>`)

	ws := doc.Root.Find("worksheet")
	fields := ExtractCalculatedFields(ws)
	if len(fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(fields))
	}

	first := fields[0]
	if first.Name != "Calculation_1" {
		t.Errorf("Name = %q, want Calculation_1", first.Name)
	}
	if first.Formula != "SUM([Profit])/SUM([Sales])" {
		t.Errorf("Formula = %q", first.Formula)
	}
	if first.Caption == nil || *first.Caption != "Profit Ratio" {
		t.Errorf("Caption = %v, want Profit Ratio", first.Caption)
	}
	if first.Comment == nil || *first.Comment != "margin" {
		t.Errorf("Comment = %v, want margin", first.Comment)
	}
	if first.Datatype == nil || *first.Datatype != "real" {
		t.Errorf("Datatype = %v, want real", first.Datatype)
	}
	if first.IsLOD {
		t.Error("plain ratio classified as LOD")
	}
	if first.Hidden {
		t.Error("Hidden = true, want false")
	}

	second := fields[1]
	if second.Name != "Calculation_2" {
		t.Errorf("Name = %q, want Calculation_2", second.Name)
	}
	if !second.Hidden {
		t.Error("Hidden = false, want true")
	}
	if !second.IsLOD || second.LODType != models.LODFixed {
		t.Errorf("LOD = (%v, %q), want (true, fixed)", second.IsLOD, second.LODType)
	}
	if !reflect.DeepEqual(second.LODScope, []string{"Region"}) {
		t.Errorf("LODScope = %v, want [Region]", second.LODScope)
	}
	if second.Caption != nil {
		t.Errorf("Caption = %v, want nil for undeclared caption", *second.Caption)
	}
}
