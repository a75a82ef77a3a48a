package recommender

import (
	"fmt"
	"strings"

	"fsmpAdvisor/domain"
)

// scoreProduct builds the full breakdown for a product that already passed
// the gate. Every table entry whose trigger appears in the eligibility text
// fires independently; the total is the plain sum of all fired deltas.
func scoreProduct(text string, gateReasons []string, profile *domain.NutritionProfile, req domain.Requirement) *domain.ScoreBreakdown {
	b := domain.NewScoreBreakdown()

	for _, r := range gateReasons {
		b.Note(domain.SectionEssential, "essential condition", r)
	}

	b.Add(domain.SectionBase, "base score", "essential conditions satisfied", baseScore)

	// primary bonuses
	applyPhraseRules(b, domain.SectionPrimary, "nutrient-need match", text, nutritionNeedRules)
	applyPhraseRules(b, domain.SectionPrimary, "symptom match", text, conditionRules)
	applyPhraseRules(b, domain.SectionPrimary, "special-condition match", text, specialConditionRules)
	scoreNutrition(b, profile, req)

	// secondary bonuses
	applyPhraseRules(b, domain.SectionSecondary, "secondary symptom match", text, secondaryConditionRules)

	// penalties
	applyPenalties(b, text, req)

	// special bonuses
	for _, r := range specialBonusRules {
		if containsAny(text, r.Phrases) {
			b.Add(domain.SectionSpecial, "special bonus",
				fmt.Sprintf("%s: +%d", r.Label, r.Weight), r.Weight)
		}
	}

	b.Note(domain.SectionVerdict, "total", fmt.Sprintf("total score: %d", b.Total))
	tier := Classify(b.Total)
	b.Tier = tier
	b.Note(domain.SectionVerdict, "tier", fmt.Sprintf("rating: %s", tier))

	return b
}

func applyPhraseRules(b *domain.ScoreBreakdown, section, category, text string, rules []phraseRule) {
	for _, r := range rules {
		if strings.Contains(text, r.Phrase) {
			b.Add(section, category, fmt.Sprintf("%s: %+d", r.Label, r.Weight), r.Weight)
		}
	}
}

// applyPenalties evaluates each penalty predicate independently; they are
// only reached when the gate already passed.
func applyPenalties(b *domain.ScoreBreakdown, text string, req domain.Requirement) {
	// major: core-need conflict, the product serves the opposite
	// macronutrient need and not the requested one.
	if req.NeedsProtein &&
		strings.Contains(text, "carbohydrate supplementation") &&
		!strings.Contains(text, "protein supplementation") {
		b.Add(domain.SectionPenalties, "major penalty",
			fmt.Sprintf("core-need conflict: %d", majorPenalty), majorPenalty)
	}
	if req.NeedsCarbohydrate &&
		strings.Contains(text, "protein supplementation") &&
		!strings.Contains(text, "carbohydrate supplementation") {
		b.Add(domain.SectionPenalties, "major penalty",
			fmt.Sprintf("core-need conflict: %d", majorPenalty), majorPenalty)
	}

	// major: unsafe ingredient relative to a declared allergy/intolerance.
	if req.ProteinAllergy &&
		strings.Contains(text, "protein") &&
		!containsAny(text, proteinAllergySafeMarkers) {
		b.Add(domain.SectionPenalties, "major penalty",
			fmt.Sprintf("unsafe ingredient: %d", majorPenalty), majorPenalty)
	}
	if req.LactoseIntolerant &&
		strings.Contains(text, "lactose") &&
		!strings.Contains(text, lactoseSafeMarker) {
		b.Add(domain.SectionPenalties, "major penalty",
			fmt.Sprintf("unsafe ingredient: %d", majorPenalty), majorPenalty)
	}

	// major: explicit contraindication keywords, regardless of requirement.
	if containsAny(text, contraindicationKeywords) {
		b.Add(domain.SectionPenalties, "major penalty",
			fmt.Sprintf("explicit contraindication: %d", majorPenalty), majorPenalty)
	}

	// minor: mismatch penalties. Each fires only when both the requirement
	// text and the product text name a phrase from the same category with
	// no overlap between the two.
	desc := strings.ToLower(req.RawDescription)

	if mismatch(desc, text, supplementationPhrases()) {
		b.Add(domain.SectionPenalties, "minor penalty",
			fmt.Sprintf("unrelated supplementation need: %d", minorPenalty), minorPenalty)
	}
	if mismatch(desc, text, rulePhrases(conditionRules)) {
		b.Add(domain.SectionPenalties, "minor penalty",
			fmt.Sprintf("unrelated indication: %d", minorPenalty), minorPenalty)
	}
	if mismatch(desc, text, rulePhrases(specialConditionRules)) {
		b.Add(domain.SectionPenalties, "minor penalty",
			fmt.Sprintf("scenario mismatch: %d", minorPenalty), minorPenalty)
	}
}

// mismatch reports whether both texts mention phrases from the category but
// share none of them.
func mismatch(desc, text string, phrases []string) bool {
	descHit, textHit, shared := false, false, false
	for _, p := range phrases {
		inDesc := strings.Contains(desc, p)
		inText := strings.Contains(text, p)
		descHit = descHit || inDesc
		textHit = textHit || inText
		shared = shared || (inDesc && inText)
	}
	return descHit && textHit && !shared
}

func rulePhrases(rules []phraseRule) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.Phrase)
	}
	return out
}

// supplementationPhrases covers the specific macronutrient needs; the
// generic "nutritional supplementation" phrase is excluded because it
// matches any supplementation wording.
func supplementationPhrases() []string {
	return []string{
		"protein supplementation",
		"carbohydrate supplementation",
		"water and electrolyte supplementation",
		"medium-chain fat supplementation",
	}
}
