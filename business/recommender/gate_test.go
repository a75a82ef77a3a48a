package recommender

import (
	"strings"
	"testing"

	"fsmpAdvisor/domain"
)

func TestCheckGate_NoAgeConstraintPasses(t *testing.T) {
	pass, reasons := checkGate("suitable for adults over 18 years", domain.Requirement{})
	if !pass {
		t.Fatal("requirement without an age bracket must pass the age check")
	}
	if len(reasons) == 0 || !strings.Contains(reasons[0], "no age constraint") {
		t.Errorf("expected an informational note about the skipped age check, got %v", reasons)
	}
}

func TestCheckGate_AgeMismatchFails(t *testing.T) {
	pass, reasons := checkGate("suitable for infants 0-12 months", domain.Requirement{Age: domain.AgeAdult})
	if pass {
		t.Fatal("adult requirement against an infant product must fail")
	}
	if len(reasons) != 1 || reasons[0] != "age bracket mismatch" {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestCheckGate_AgeMatchVariants(t *testing.T) {
	cases := []struct {
		text string
		age  domain.AgeBracket
	}{
		{"for infants 0-12 months", domain.AgeInfant},
		{"for infants 0–12 months of age", domain.AgeInfant},
		{"children 1-10 years", domain.AgeChild},
		{"persons over 10 years", domain.AgeOverTen},
		{"adults over 18 years", domain.AgeAdult},
		{"18 years and older", domain.AgeAdult},
		{"50 years and older", domain.AgeSenior},
	}

	for _, tc := range cases {
		pass, _ := checkGate(tc.text, domain.Requirement{Age: tc.age})
		if !pass {
			t.Errorf("checkGate(%q, age=%q) failed, want pass", tc.text, tc.age)
		}
	}
}

func TestCheckGate_ProteinAllergy(t *testing.T) {
	req := domain.Requirement{ProteinAllergy: true}

	pass, reasons := checkGate("regular whey protein formula", req)
	if pass {
		t.Fatal("product without an allergy-safe marker must fail")
	}
	if reasons[0] != "not suitable for protein-allergic consumers" {
		t.Errorf("reasons = %v", reasons)
	}

	pass, _ = checkGate("for consumers with food-protein allergy", req)
	if !pass {
		t.Error("food-protein allergy marker must pass")
	}

	pass, _ = checkGate("for milk-protein allergy sufferers", req)
	if !pass {
		t.Error("milk-protein allergy marker must pass")
	}
}

func TestCheckGate_LactoseIntolerance(t *testing.T) {
	req := domain.Requirement{LactoseIntolerant: true}

	if pass, _ := checkGate("a dairy based formula", req); pass {
		t.Error("product without a lactose marker must fail")
	}
	if pass, _ := checkGate("suitable for lactose intolerant consumers", req); !pass {
		t.Error("'lactose intolerant' wording must pass")
	}
	if pass, _ := checkGate("designed for lactose intolerance", req); !pass {
		t.Error("'lactose intolerance' wording must pass")
	}
}

func TestCheckGate_FirstFailureStops(t *testing.T) {
	// Both the age and the allergy check would fail; only the age reason
	// must be reported.
	req := domain.Requirement{Age: domain.AgeAdult, ProteinAllergy: true}
	pass, reasons := checkGate("for infants 0-12 months", req)
	if pass {
		t.Fatal("expected gate failure")
	}
	if len(reasons) != 1 || reasons[0] != "age bracket mismatch" {
		t.Errorf("expected only the first failure, got %v", reasons)
	}
}
