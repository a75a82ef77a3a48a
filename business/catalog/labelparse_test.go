package catalog

import "testing"

const sampleLabel = `[Product Category] Nutritional supplementation formula.
[Physical State] Powder.
[Intended Population] Suitable for infants with food-protein allergy.
[Nutrition Table]
item             per-100g  per-100kJ
Energy(kJ)       2000      100
Protein(g)       12.5      0.62
Fat(g)           20.1      1.00
Carbohydrate(g)  55.0      2.75
Sodium(mg)       400       20.0
Remarks: values are approximate.
`

func TestParseLabelDocument(t *testing.T) {
	doc := ParseLabelDocument(sampleLabel)

	if doc.Category != "Nutritional supplementation formula" {
		t.Errorf("Category = %q", doc.Category)
	}
	if doc.PhysicalState != "Powder" {
		t.Errorf("PhysicalState = %q", doc.PhysicalState)
	}
	if doc.EligibilityText != "Suitable for infants with food-protein allergy" {
		t.Errorf("EligibilityText = %q", doc.EligibilityText)
	}

	n := doc.Nutrition
	if n.EnergyKJ != 100 {
		t.Errorf("EnergyKJ = %v", n.EnergyKJ)
	}
	if n.ProteinG != 0.62 {
		t.Errorf("ProteinG = %v", n.ProteinG)
	}
	if n.FatG != 1.00 {
		t.Errorf("FatG = %v", n.FatG)
	}
	if n.CarbohydrateG != 2.75 {
		t.Errorf("CarbohydrateG = %v", n.CarbohydrateG)
	}
	if n.SodiumMG != 20.0 {
		t.Errorf("SodiumMG = %v", n.SodiumMG)
	}
}

func TestParseLabelDocument_InlineLabels(t *testing.T) {
	text := "[Product Category] Electrolyte formula. [Physical State] Liquid. [Intended Population] Adults over 18 years."

	doc := ParseLabelDocument(text)
	if doc.Category != "Electrolyte formula" {
		t.Errorf("Category = %q", doc.Category)
	}
	if doc.PhysicalState != "Liquid" {
		t.Errorf("PhysicalState = %q", doc.PhysicalState)
	}
	if doc.EligibilityText != "Adults over 18 years" {
		t.Errorf("EligibilityText = %q", doc.EligibilityText)
	}
}

func TestExtractLabelContent_StopsAtLineBreakBeforeNextLabel(t *testing.T) {
	text := "[Product Category] Electrolyte formula.\nStorage: keep in a cool dry place.\n[Physical State] Liquid."

	if got := ExtractLabelContent(text, "[Product Category]"); got != "Electrolyte formula" {
		t.Errorf("Category = %q, free text after the line break must not be absorbed", got)
	}
	if got := ExtractLabelContent(text, "[Physical State]"); got != "Liquid" {
		t.Errorf("PhysicalState = %q", got)
	}
}

func TestParseLabelDocument_MissingSections(t *testing.T) {
	doc := ParseLabelDocument("[Product Category] Powder blend")
	if doc.Category != "Powder blend" {
		t.Errorf("Category = %q", doc.Category)
	}
	if doc.PhysicalState != "" || doc.EligibilityText != "" {
		t.Error("missing sections must come back empty")
	}
	if doc.Nutrition.EnergyKJ != 0 {
		t.Error("no nutrition table means a zero profile")
	}
}

func TestParseNutritionTable_AlternateColumnLayout(t *testing.T) {
	text := `[Nutrition Table]
item         per-100g  per-100kJ  per-serving
Protein(g)   12.5      0.80       5.0
`

	profile := ParseNutritionTable(text)
	if profile.ProteinG != 0.80 {
		t.Errorf("ProteinG = %v, want the per-100kJ column", profile.ProteinG)
	}
}

func TestParseNutritionTable_NoHeader(t *testing.T) {
	text := `[Nutrition Table]
Protein(g) 12.5 0.80
`

	profile := ParseNutritionTable(text)
	if profile.ProteinG != 0 {
		t.Errorf("without a per-100kJ header nothing should parse, got %v", profile.ProteinG)
	}
}

func TestParseNutritionTable_BadValuesLeftAtZero(t *testing.T) {
	text := `[Nutrition Table]
item        per-100kJ
Protein(g)  n/a
Fat(g)      1.20
`

	profile := ParseNutritionTable(text)
	if profile.ProteinG != 0 {
		t.Errorf("unparseable value must stay zero, got %v", profile.ProteinG)
	}
	if profile.FatG != 1.20 {
		t.Errorf("FatG = %v", profile.FatG)
	}
}
