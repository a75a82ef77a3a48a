package recommender

import (
	"strings"

	"fsmpAdvisor/domain"
)

// The extractor tables are single-select: per field the first matching
// trigger wins and later triggers are ignored. Unrecognized text leaves a
// field empty; extraction never fails.

// ageTrigger order matters: "over 10" must be tried before the 1-10 bracket
// trigger so "over 10 years" is not swallowed by it.
var ageTriggers = []struct {
	Trigger string
	Bracket domain.AgeBracket
}{
	{"infant", domain.AgeInfant},
	{"over 18", domain.AgeAdult},
	{"over 50", domain.AgeSenior},
	{"over 10", domain.AgeOverTen},
	{"10-year", domain.AgeChild}, // a 10-year-old falls in the 1-10 bracket
	{"10 year", domain.AgeChild},
}

var needTriggers = []struct {
	Triggers []string
	Set      func(*domain.Requirement)
}{
	{[]string{"protein allergy"}, func(r *domain.Requirement) { r.ProteinAllergy = true }},
	{[]string{"lactose intoleran"}, func(r *domain.Requirement) { r.LactoseIntolerant = true }},
	{[]string{"protein supplement", "needs protein"}, func(r *domain.Requirement) { r.NeedsProtein = true }},
	{[]string{"carbohydrate supplement"}, func(r *domain.Requirement) { r.NeedsCarbohydrate = true }},
	{[]string{"nutritional supplement"}, func(r *domain.Requirement) { r.NeedsNutrition = true }},
}

// ExtractRequirement turns a free-text need description into a structured
// requirement record.
func ExtractRequirement(description string) domain.Requirement {
	req := domain.Requirement{RawDescription: description}
	text := strings.ToLower(description)

	for _, t := range ageTriggers {
		if strings.Contains(text, t.Trigger) {
			req.Age = t.Bracket
			break
		}
	}

	for _, nt := range needTriggers {
		for _, trig := range nt.Triggers {
			if strings.Contains(text, trig) {
				nt.Set(&req)
				break
			}
		}
	}

	return req
}
