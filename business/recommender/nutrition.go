package recommender

import (
	"fmt"

	"fsmpAdvisor/domain"
)

// scoreNutrition applies the nutrient tier ladders to the product's
// profile. A missing profile is expected and contributes zero with an
// informational note; it never fails the evaluation.
func scoreNutrition(b *domain.ScoreBreakdown, profile *domain.NutritionProfile, req domain.Requirement) {
	if profile == nil {
		b.Note(domain.SectionPrimary, "nutrient content", "nutrient profile unavailable for this product")
		return
	}

	if !req.NeedsProtein {
		return
	}

	scoreNutrientTier(b, profile, domain.NutrientProtein)
}

func scoreNutrientTier(b *domain.ScoreBreakdown, profile *domain.NutritionProfile, nutrient string) {
	tiers, ok := nutrientTierTables[nutrient]
	if !ok {
		return
	}
	amount, ok := profile.Amount(nutrient)
	if !ok {
		return
	}

	for _, tier := range tiers {
		if amount > tier.Above {
			b.Add(domain.SectionPrimary, "nutrient content",
				fmt.Sprintf("%s content %s (%.2f g/100kJ)", nutrient, tier.Label, amount),
				tier.Weight)
			return
		}
	}

	b.Note(domain.SectionPrimary, "nutrient content",
		fmt.Sprintf("%s content low (%.2f g/100kJ)", nutrient, amount))
}
