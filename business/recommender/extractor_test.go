package recommender

import (
	"testing"

	"fsmpAdvisor/domain"
)

func TestExtractRequirement_AgeBrackets(t *testing.T) {
	cases := []struct {
		description string
		want        domain.AgeBracket
	}{
		{"An infant who cannot tolerate regular formula", domain.AgeInfant},
		{"A patient over 18 years old recovering from surgery", domain.AgeAdult},
		{"A person over 50 years old with chewing problems", domain.AgeSenior},
		{"A teenager over 10 years old after trauma", domain.AgeOverTen},
		{"A 10-year-old child who needs protein supplementation", domain.AgeChild},
		{"A 10 year old with feeding problems", domain.AgeChild},
		{"Someone with no age mentioned at all", domain.AgeUnknown},
	}

	for _, tc := range cases {
		req := ExtractRequirement(tc.description)
		if req.Age != tc.want {
			t.Errorf("ExtractRequirement(%q).Age = %q, want %q", tc.description, req.Age, tc.want)
		}
	}
}

func TestExtractRequirement_AgeFirstMatchWins(t *testing.T) {
	// "infant" is tried before any numeric bracket.
	req := ExtractRequirement("an infant, definitely not over 18")
	if req.Age != domain.AgeInfant {
		t.Errorf("Age = %q, want %q", req.Age, domain.AgeInfant)
	}
}

func TestExtractRequirement_Flags(t *testing.T) {
	req := ExtractRequirement("An adult over 18 years with protein allergy and lactose intolerance who needs protein supplementation")

	if !req.ProteinAllergy {
		t.Error("expected ProteinAllergy to be set")
	}
	if !req.LactoseIntolerant {
		t.Error("expected LactoseIntolerant to be set")
	}
	if !req.NeedsProtein {
		t.Error("expected NeedsProtein to be set")
	}
	if req.NeedsCarbohydrate {
		t.Error("did not expect NeedsCarbohydrate")
	}
}

func TestExtractRequirement_AlternateTriggers(t *testing.T) {
	if req := ExtractRequirement("this patient needs protein badly"); !req.NeedsProtein {
		t.Error("expected 'needs protein' to set NeedsProtein")
	}
	if req := ExtractRequirement("requires carbohydrate supplementation"); !req.NeedsCarbohydrate {
		t.Error("expected NeedsCarbohydrate")
	}
	if req := ExtractRequirement("general nutritional supplementation required"); !req.NeedsNutrition {
		t.Error("expected NeedsNutrition")
	}
}

func TestExtractRequirement_KeepsRawDescription(t *testing.T) {
	raw := "An Infant With Protein Allergy"
	req := ExtractRequirement(raw)
	if req.RawDescription != raw {
		t.Errorf("RawDescription = %q, want original casing preserved", req.RawDescription)
	}
}

func TestExtractRequirement_EmptyDescription(t *testing.T) {
	req := ExtractRequirement("")
	if req.Age != domain.AgeUnknown || req.ProteinAllergy || req.LactoseIntolerant ||
		req.NeedsProtein || req.NeedsCarbohydrate || req.NeedsNutrition {
		t.Errorf("empty description should extract an empty requirement, got %+v", req)
	}
}
