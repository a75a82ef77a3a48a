package domain

import (
	"time"

	"gorm.io/datatypes"
)

// AgeBracket is the fixed age enumeration recognized in need descriptions
// and matched against product eligibility text. Empty means the description
// carried no recognizable age information.
type AgeBracket string

const (
	AgeUnknown AgeBracket = ""
	AgeInfant  AgeBracket = "infant"
	AgeChild   AgeBracket = "1-10 years"
	AgeOverTen AgeBracket = "over 10 years"
	AgeAdult   AgeBracket = "over 18 years"
	AgeSenior  AgeBracket = "over 50 years"
)

// Requirement is the structured form of a consumer's free-text need
// description. Built once per request, read-only afterwards.
type Requirement struct {
	Age               AgeBracket `json:"age"`
	ProteinAllergy    bool       `json:"protein_allergy"`
	LactoseIntolerant bool       `json:"lactose_intolerant"`
	NeedsProtein      bool       `json:"needs_protein"`
	NeedsCarbohydrate bool       `json:"needs_carbohydrate"`
	NeedsNutrition    bool       `json:"needs_nutrition"`

	// RawDescription keeps the original text for mismatch predicates
	// and audit logging.
	RawDescription string `json:"raw_description"`
}

// Breakdown section names, in presentation order.
const (
	SectionEssential = "Essential Conditions"
	SectionBase      = "Base Score"
	SectionPrimary   = "Primary Bonuses"
	SectionSecondary = "Secondary Bonuses"
	SectionPenalties = "Penalties"
	SectionSpecial   = "Special Bonuses"
	SectionVerdict   = "Final Verdict"
)

// ScoreContribution is one fired rule: a labeled signed delta. Amount 0
// marks an informational note (lookup failures, verdict lines).
type ScoreContribution struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
	Amount   int    `json:"amount"`
}

type ScoreSection struct {
	Name    string              `json:"name"`
	Entries []ScoreContribution `json:"entries"`
}

// ScoreBreakdown is the full audit trail of one product evaluation.
// Total always equals the sum of every entry amount across sections.
type ScoreBreakdown struct {
	Sections []ScoreSection `json:"sections"`
	Total    int            `json:"total"`
	Tier     string         `json:"tier"`
}

// NewScoreBreakdown returns a breakdown with all sections present, empty.
func NewScoreBreakdown() *ScoreBreakdown {
	names := []string{
		SectionEssential,
		SectionBase,
		SectionPrimary,
		SectionSecondary,
		SectionPenalties,
		SectionSpecial,
		SectionVerdict,
	}
	sections := make([]ScoreSection, 0, len(names))
	for _, n := range names {
		sections = append(sections, ScoreSection{Name: n})
	}
	return &ScoreBreakdown{Sections: sections}
}

// Add appends a scored contribution to a section and updates the total.
func (b *ScoreBreakdown) Add(section, category, reason string, amount int) {
	for i := range b.Sections {
		if b.Sections[i].Name == section {
			b.Sections[i].Entries = append(b.Sections[i].Entries, ScoreContribution{
				Category: category,
				Reason:   reason,
				Amount:   amount,
			})
			b.Total += amount
			return
		}
	}
}

// Note appends an informational (zero amount) entry.
func (b *ScoreBreakdown) Note(section, category, reason string) {
	b.Add(section, category, reason, 0)
}

// Sum recomputes the total from the entries.
func (b *ScoreBreakdown) Sum() int {
	total := 0
	for _, s := range b.Sections {
		for _, e := range s.Entries {
			total += e.Amount
		}
	}
	return total
}

// Evaluation status: a gate failure is a distinct outcome from a product
// that was scored and landed at or below zero.
const (
	EvalIneligible = "ineligible"
	EvalScored     = "scored"
)

// Evaluation is the per-product outcome of the full gate+score+classify
// pipeline. Breakdown is nil when the gate failed.
type Evaluation struct {
	Product     Product         `json:"product"`
	Status      string          `json:"status"`
	GateReasons []string        `json:"gate_reasons,omitempty"`
	Breakdown   *ScoreBreakdown `json:"breakdown,omitempty"`
	Total       int             `json:"total"`
}

// Recommendation is one ranked result returned to the caller.
type Recommendation struct {
	RegistrationNumber string         `json:"registration_number"`
	ProductName        string         `json:"product_name"`
	Manufacturer       string         `json:"manufacturer"`
	Category           string         `json:"category"`
	EligibilityText    string         `json:"eligibility_text"`
	Total              int            `json:"total"`
	Tier               string         `json:"tier"`
	Breakdown          ScoreBreakdown `json:"breakdown"`
}

// RecommendationEvent is the persisted audit row for one recommendation
// request.
type RecommendationEvent struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	TraceID     string            `gorm:"column:trace_id;type:text" json:"trace_id"`
	Description string            `gorm:"column:description;type:text" json:"description"`
	Requirement datatypes.JSONMap `gorm:"column:requirement;type:jsonb" json:"requirement"`
	ResultCount int               `gorm:"column:result_count" json:"result_count"`
	TopScore    int               `gorm:"column:top_score" json:"top_score"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}
