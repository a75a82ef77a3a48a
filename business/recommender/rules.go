package recommender

import "fsmpAdvisor/domain"

// Rule tables. Scoring rules are multi-select: every entry whose trigger is
// a substring of the product eligibility text fires independently. The
// extractor tables in extractor.go are single-select instead (first trigger
// wins per field); the two must not be conflated.

// phraseRule fires when its single trigger phrase appears in the text.
type phraseRule struct {
	Phrase string
	Weight int
	Label  string
}

// groupRule fires once when any of its trigger phrases appears.
type groupRule struct {
	Phrases []string
	Weight  int
	Label   string
}

const baseScore = 10

// Age bracket → phrases accepted in product eligibility text.
var ageBracketPhrases = map[domain.AgeBracket][]string{
	domain.AgeInfant:  {"0–12 months", "0-12 months", "infant"},
	domain.AgeChild:   {"1–10 years", "1-10 years"},
	domain.AgeOverTen: {"over 10 years"},
	domain.AgeAdult:   {"over 18 years", "18 years and older"},
	domain.AgeSenior:  {"over 50 years", "50 years and older"},
}

// Markers a product must carry to be handed to an allergic or intolerant
// consumer.
var (
	proteinAllergySafeMarkers = []string{"food-protein allergy", "milk-protein allergy"}
	lactoseSafeMarker         = "lactose intoleran" // matches intolerant and intolerance
)

// Primary bonuses: nutrient-need matches.
var nutritionNeedRules = []phraseRule{
	{"protein supplementation", 5, "protein supplementation"},
	{"carbohydrate supplementation", 5, "carbohydrate supplementation"},
	{"water and electrolyte supplementation", 5, "water and electrolyte supplementation"},
	{"medium-chain fat supplementation", 5, "medium-chain fat supplementation"},
	{"nutritional supplementation", 3, "nutritional supplementation"},
}

// Primary bonuses: condition/symptom matches.
var conditionRules = []phraseRule{
	{"feeding restriction", 4, "feeding restriction"},
	{"malabsorption", 4, "malabsorption"},
	{"metabolic disorder", 4, "metabolic disorder"},
	{"dysphagia", 4, "dysphagia"},
	{"malnutrition", 4, "malnutrition"},
}

// Primary bonuses: special-condition matches.
var specialConditionRules = []phraseRule{
	{"high risk", 3, "high risk"},
	{"pre-operative", 3, "pre-operative need"},
	{"aspiration risk", 3, "aspiration risk"},
}

// Secondary bonuses.
var secondaryConditionRules = []phraseRule{
	{"dehydration", 2, "dehydration"},
	{"digestive system", 2, "digestive system problems"},
	{"electrolyte needs", 2, "electrolyte needs"},
	{"specific disease", 2, "specific disease"},
}

// Explicit contraindication keywords; any of them anywhere in the text is a
// major penalty regardless of the requirement.
var contraindicationKeywords = []string{"contraindicated", "forbidden", "not suitable"}

const (
	majorPenalty = -5
	minorPenalty = -3
)

// Special bonuses: claim phrase groups, each firing at most once.
var specialBonusRules = []groupRule{
	{[]string{"specifically designed", "disease-specific"}, 3, "targeted design"},
	{[]string{"special formula", "optimized formula"}, 2, "optimized formulation"},
	{[]string{"easily absorbed", "high bioavailability"}, 2, "high bioavailability"},
	{[]string{"high safety"}, 2, "high safety"},
	{[]string{"easy to use", "convenient to use"}, 2, "ease of use"},
}

// nutrientTier compares a per-100kJ amount against a descending threshold
// ladder; exactly one tier fires.
type nutrientTier struct {
	Above  float64
	Weight int
	Label  string
}

// Tier tables per nutrient. New nutrients are additions here, not new code.
var nutrientTierTables = map[string][]nutrientTier{
	domain.NutrientProtein: {
		{2.5, 3, "high"},
		{1.2, 2, "moderate"},
		{0.6, 1, "modest"},
	},
}
