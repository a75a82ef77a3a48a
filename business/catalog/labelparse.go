package catalog

import (
	"strconv"
	"strings"

	"fsmpAdvisor/domain"
)

// Label documents are the plain text of a registration dossier: bracketed
// sections like "[Product Category] ..." plus a whitespace-aligned
// nutrition table whose header names a "per-100kJ" column.

const (
	labelCategory      = "[Product Category]"
	labelPhysicalState = "[Physical State]"
	labelPopulation    = "[Intended Population]"
	labelNutrition     = "[Nutrition Table]"
)

type LabelDocument struct {
	Category        string
	PhysicalState   string
	EligibilityText string
	Nutrition       domain.NutritionProfile
}

// ParseLabelDocument pulls the catalog fields and the nutrition table out
// of a label document. Missing sections come back empty.
func ParseLabelDocument(text string) LabelDocument {
	return LabelDocument{
		Category:        ExtractLabelContent(text, labelCategory),
		PhysicalState:   ExtractLabelContent(text, labelPhysicalState),
		EligibilityText: ExtractLabelContent(text, labelPopulation),
		Nutrition:       ParseNutritionTable(text),
	}
}

// ExtractLabelContent returns the content following a bracketed label up
// to the next label or line break, with trailing periods stripped.
func ExtractLabelContent(text, label string) string {
	start := strings.Index(text, label)
	if start == -1 {
		return ""
	}

	// Stop at the next label or line break, whichever comes first, so
	// free text between sections is not absorbed into the value.
	content := text[start+len(label):]
	cut := len(content)
	if next := strings.IndexByte(content, '['); next != -1 && next < cut {
		cut = next
	}
	if nl := strings.IndexByte(content, '\n'); nl != -1 && nl < cut {
		cut = nl
	}
	content = content[:cut]

	return strings.TrimRight(strings.TrimSpace(content), ".")
}

// nutrientAliases maps profile fields to the row names used on labels.
var nutrientAliases = []struct {
	Nutrient string
	Aliases  []string
}{
	{domain.NutrientEnergy, []string{"energy"}},
	{domain.NutrientFat, []string{"fat"}},
	{domain.NutrientCarbohydrate, []string{"carbohydrate"}},
	{domain.NutrientProtein, []string{"protein"}},
	{domain.NutrientSodium, []string{"sodium"}},
	{domain.NutrientChloride, []string{"chloride"}},
	{domain.NutrientPotassium, []string{"potassium"}},
	{domain.NutrientPhosphorus, []string{"phosphorus"}},
}

// ParseNutritionTable reads the per-100kJ column of the nutrition table.
// Labels come in two layouts (per-100g/per-100mL/per-100kJ and
// per-100g/per-100kJ/per-serving), so the column index is taken from the
// header instead of being assumed. Nutrients that cannot be read are left
// at zero.
func ParseNutritionTable(text string) domain.NutritionProfile {
	var profile domain.NutritionProfile

	lines := tableLines(text)
	if len(lines) == 0 {
		return profile
	}

	// locate the header and the per-100kJ column
	headerIdx, kjCol := -1, -1
	for i, line := range lines {
		if !strings.Contains(line, "per-100kJ") {
			continue
		}
		for j, field := range strings.Fields(line) {
			if strings.Contains(field, "per-100kJ") {
				headerIdx, kjCol = i, j
				break
			}
		}
		break
	}
	if headerIdx == -1 {
		return profile
	}

	for _, line := range lines[headerIdx+1:] {
		parts := strings.Fields(line)
		if len(parts) <= kjCol {
			continue
		}
		name := strings.ToLower(parts[0])
		for _, na := range nutrientAliases {
			if !hasAlias(name, na.Aliases) {
				continue
			}
			if v, err := strconv.ParseFloat(parts[kjCol], 64); err == nil {
				setNutrient(&profile, na.Nutrient, v)
			}
			break
		}
	}

	return profile
}

// tableLines returns the lines between the nutrition table label and the
// next section (or a remarks line).
func tableLines(text string) []string {
	var out []string
	inTable := false
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, labelNutrition) {
			inTable = true
			continue
		}
		if inTable {
			if strings.Contains(line, "[") || strings.Contains(strings.ToLower(line), "remarks") {
				break
			}
			out = append(out, line)
		}
	}
	return out
}

func hasAlias(name string, aliases []string) bool {
	for _, a := range aliases {
		if strings.Contains(name, a) {
			return true
		}
	}
	return false
}

func setNutrient(p *domain.NutritionProfile, nutrient string, v float64) {
	switch nutrient {
	case domain.NutrientEnergy:
		p.EnergyKJ = v
	case domain.NutrientFat:
		p.FatG = v
	case domain.NutrientCarbohydrate:
		p.CarbohydrateG = v
	case domain.NutrientProtein:
		p.ProteinG = v
	case domain.NutrientSodium:
		p.SodiumMG = v
	case domain.NutrientChloride:
		p.ChlorideMG = v
	case domain.NutrientPotassium:
		p.PotassiumMG = v
	case domain.NutrientPhosphorus:
		p.PhosphorusMG = v
	}
}
