package recommender

import (
	"fmt"
	"strings"

	"fsmpAdvisor/domain"
)

// checkGate evaluates the hard eligibility conditions in order. The first
// failure stops evaluation and excludes the product from scoring entirely.
// The returned reasons are diagnostics, not part of ranked output.
func checkGate(text string, req domain.Requirement) (bool, []string) {
	var reasons []string

	// 1) age bracket. A requirement without a recognized bracket carries
	// no age constraint, so the check is skipped.
	if req.Age == domain.AgeUnknown {
		reasons = append(reasons, "no age constraint in requirement")
	} else {
		matched := ""
		for _, phrase := range ageBracketPhrases[req.Age] {
			if strings.Contains(text, phrase) {
				matched = phrase
				break
			}
		}
		if matched == "" {
			return false, []string{"age bracket mismatch"}
		}
		reasons = append(reasons, fmt.Sprintf("age bracket match: %s", matched))
	}

	// 2) protein allergy: the product must carry an explicit allergy-safe
	// marker.
	if req.ProteinAllergy {
		if !containsAny(text, proteinAllergySafeMarkers) {
			return false, []string{"not suitable for protein-allergic consumers"}
		}
		reasons = append(reasons, "protein allergy requirement satisfied")
	}

	// 3) lactose intolerance.
	if req.LactoseIntolerant {
		if !strings.Contains(text, lactoseSafeMarker) {
			return false, []string{"not suitable for lactose-intolerant consumers"}
		}
		reasons = append(reasons, "lactose intolerance requirement satisfied")
	}

	return true, reasons
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
