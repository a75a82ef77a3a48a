package catalog

import (
	"strings"

	"fsmpAdvisor/domain"
)

var infantKeywords = []string{"infant"}

// ClassifyPopulation buckets a product by its eligibility text: anything
// naming an infant cohort is infant formula, everything else (including
// absent text) is for ages one and above.
func ClassifyPopulation(eligibilityText string) string {
	text := strings.ToLower(eligibilityText)
	for _, kw := range infantKeywords {
		if strings.Contains(text, kw) {
			return domain.PopulationInfant
		}
	}
	return domain.PopulationOnePlus
}
