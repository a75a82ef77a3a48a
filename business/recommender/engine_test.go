package recommender

import (
	"reflect"
	"testing"

	"fsmpAdvisor/domain"
)

func testCatalog() []domain.Product {
	return []domain.Product{
		{
			RegistrationNumber: "TY20175001",
			ProductName:        "Infant Allergy Formula",
			EligibilityText:    "Suitable for infants with food-protein allergy requiring protein supplementation. Specifically designed.",
		},
		{
			RegistrationNumber: "TY20183002",
			ProductName:        "Adult Recovery Drink",
			EligibilityText:    "For adults over 18 years with malnutrition requiring nutritional supplementation.",
		},
		{
			RegistrationNumber: "TY20191003",
			ProductName:        "Infant Basic Formula",
			EligibilityText:    "Suitable for infants 0-12 months.",
		},
		{
			RegistrationNumber: "TY20204004",
			ProductName:        "Carb Loader",
			EligibilityText:    "For infants requiring carbohydrate supplementation. Contraindicated for protein needs.",
		},
	}
}

func TestEngine_Evaluate_GateFailure(t *testing.T) {
	e := NewEngine(DefaultConfig())
	req := ExtractRequirement("An adult over 18 years old")

	ev := e.Evaluate(testCatalog()[0], nil, req)
	if ev.Status != domain.EvalIneligible {
		t.Fatalf("Status = %q, want %q", ev.Status, domain.EvalIneligible)
	}
	if ev.Breakdown != nil {
		t.Error("ineligible products must not carry a breakdown")
	}
	if len(ev.GateReasons) == 0 {
		t.Error("expected a gate failure reason")
	}
}

func TestEngine_Rank_ExcludesGateFailuresAndNonPositive(t *testing.T) {
	e := NewEngine(DefaultConfig())
	req := ExtractRequirement("An infant with protein allergy who needs protein supplementation")

	recs := e.Rank(testCatalog(), nil, req)

	for _, r := range recs {
		if r.Total <= 0 {
			t.Errorf("ranked output must be strictly positive, got %d for %s", r.Total, r.RegistrationNumber)
		}
		if r.RegistrationNumber == "TY20183002" {
			t.Error("adult product must fail the infant age gate")
		}
		if r.RegistrationNumber == "TY20191003" {
			t.Error("product without the allergy-safe marker must fail the gate")
		}
		if r.RegistrationNumber == "TY20204004" {
			t.Error("product without the allergy-safe marker must fail the gate")
		}
	}

	if len(recs) != 1 || recs[0].RegistrationNumber != "TY20175001" {
		t.Fatalf("expected exactly the matching formula, got %v", recs)
	}
}

func TestEngine_Rank_SortedDescending(t *testing.T) {
	e := NewEngine(DefaultConfig())
	req := ExtractRequirement("needs nutritional supplementation")

	products := []domain.Product{
		{RegistrationNumber: "A", EligibilityText: "nutritional supplementation"},
		{RegistrationNumber: "B", EligibilityText: "nutritional supplementation, specifically designed, high safety"},
		{RegistrationNumber: "C", EligibilityText: "nutritional supplementation, easy to use"},
	}

	recs := e.Rank(products, nil, req)
	if len(recs) != 3 {
		t.Fatalf("expected 3 results, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i-1].Total < recs[i].Total {
			t.Errorf("results not sorted descending: %d before %d", recs[i-1].Total, recs[i].Total)
		}
	}
	if recs[0].RegistrationNumber != "B" {
		t.Errorf("strongest match must rank first, got %s", recs[0].RegistrationNumber)
	}
}

func TestEngine_Rank_StableOnTies(t *testing.T) {
	e := NewEngine(Config{Workers: 1, DefaultLimit: 10})
	req := ExtractRequirement("needs nutritional supplementation")

	products := []domain.Product{
		{RegistrationNumber: "first", EligibilityText: "nutritional supplementation"},
		{RegistrationNumber: "second", EligibilityText: "nutritional supplementation"},
		{RegistrationNumber: "third", EligibilityText: "nutritional supplementation"},
	}

	recs := e.Rank(products, nil, req)
	want := []string{"first", "second", "third"}
	for i, r := range recs {
		if r.RegistrationNumber != want[i] {
			t.Fatalf("tie order not stable: got %s at %d, want %s", r.RegistrationNumber, i, want[i])
		}
	}
}

func TestEngine_ParallelMatchesSequential(t *testing.T) {
	req := ExtractRequirement("An infant with protein allergy who needs protein supplementation")
	profiles := map[string]domain.NutritionProfile{
		"TY20175001": {RegistrationNumber: "TY20175001", ProteinG: 3.0},
	}

	sequential := NewEngine(Config{Workers: 1}).EvaluateAll(testCatalog(), profiles, req)
	parallel := NewEngine(Config{Workers: 8}).EvaluateAll(testCatalog(), profiles, req)

	if !reflect.DeepEqual(sequential, parallel) {
		t.Error("parallel evaluation must produce identical output to sequential")
	}
}

func TestEngine_Evaluate_NutrientProfileApplied(t *testing.T) {
	e := NewEngine(DefaultConfig())
	req := ExtractRequirement("An infant with protein allergy who needs protein supplementation")
	p := testCatalog()[0]

	withProfile := e.Evaluate(p, &domain.NutritionProfile{ProteinG: 3.0}, req)
	withoutProfile := e.Evaluate(p, nil, req)

	if withProfile.Total != withoutProfile.Total+3 {
		t.Errorf("high protein profile must add 3: %d vs %d", withProfile.Total, withoutProfile.Total)
	}
}

func TestEngine_Evaluate_Deterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	req := ExtractRequirement("An infant with protein allergy who needs protein supplementation")
	p := testCatalog()[0]

	first := e.Evaluate(p, nil, req)
	for i := 0; i < 5; i++ {
		if got := e.Evaluate(p, nil, req); !reflect.DeepEqual(first, got) {
			t.Fatal("repeated evaluation must be identical")
		}
	}
}
