package catalog

import (
	"testing"

	"fsmpAdvisor/domain"
)

func TestParseRegistrationNumber(t *testing.T) {
	cases := []struct {
		reg        string
		wantSource string
		wantYear   int
	}{
		{"GSZZTY20175001", domain.SourceImported, 2017},
		{"GSZZTY20171001", domain.SourceDomestic, 2017},
		{"TY20203005", domain.SourceDomestic, 2020},
		{"TY20225123", domain.SourceImported, 2022},
		{"NOPREFIX", "", 0},
		{"TY2017", "", 0},     // too short, no serial digit
		{"TYABCD1001", "", 0}, // year is not numeric
		{"", "", 0},
	}

	for _, tc := range cases {
		source, year := ParseRegistrationNumber(tc.reg)
		if source != tc.wantSource || year != tc.wantYear {
			t.Errorf("ParseRegistrationNumber(%q) = (%q, %d), want (%q, %d)",
				tc.reg, source, year, tc.wantSource, tc.wantYear)
		}
	}
}

func TestClassifyPopulation(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Suitable for infants 0-12 months", domain.PopulationInfant},
		{"For Infant use only", domain.PopulationInfant},
		{"For adults over 18 years", domain.PopulationOnePlus},
		{"", domain.PopulationOnePlus},
	}

	for _, tc := range cases {
		if got := ClassifyPopulation(tc.text); got != tc.want {
			t.Errorf("ClassifyPopulation(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
