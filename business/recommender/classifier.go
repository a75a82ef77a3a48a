package recommender

// Recommendation tiers, strongest first.
const (
	TierHighly   = "highly recommended"
	TierStrongly = "strongly recommended"
	TierPlain    = "recommended"
	TierConsider = "consider"
	TierNot      = "not recommended"
)

var tierLadder = []struct {
	Min   int
	Label string
}{
	{25, TierHighly},
	{20, TierStrongly},
	{15, TierPlain},
	{10, TierConsider},
}

// Classify maps a total score to a tier label, top down, first match wins.
func Classify(total int) string {
	for _, t := range tierLadder {
		if total >= t.Min {
			return t.Label
		}
	}
	return TierNot
}
