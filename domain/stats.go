package domain

// Derived, read-only views over the catalog. Computed on demand, never
// persisted.

type YearlyApprovals struct {
	Year     int `json:"year"`
	Domestic int `json:"domestic"`
	Imported int `json:"imported"`
}

type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Share    float64 `json:"share"`
}

type CategoryReport struct {
	Categories []CategoryCount `json:"categories"`
	TopThree   float64         `json:"top_three_share"`
}

type PopulationSourceCount struct {
	PopulationClass string `json:"population_class"`
	Source          string `json:"source"`
	Count           int    `json:"count"`
}

type NutrientSummary struct {
	Nutrient string  `json:"nutrient"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

type DistributionReport struct {
	Summaries   []NutrientSummary `json:"summaries"`
	Correlation float64           `json:"fat_protein_correlation"`
}

type PhraseCount struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}
