package recommender

import (
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"fsmpAdvisor/domain"
)

// Engine is the pure evaluation pipeline: gate, scoring, classification,
// ranking. It holds no mutable state, does no I/O, and is safe for
// concurrent use; the catalog and nutrient profiles are handed in as
// read-only inputs.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Engine{cfg: cfg}
}

// Evaluate runs the gate and, when it passes, the full scoring pipeline for
// a single product. A nil profile is valid. Absent eligibility text is
// treated as empty, never as an error.
func (e *Engine) Evaluate(p domain.Product, profile *domain.NutritionProfile, req domain.Requirement) domain.Evaluation {
	text := strings.ToLower(p.EligibilityText)

	pass, reasons := checkGate(text, req)
	if !pass {
		return domain.Evaluation{
			Product:     p,
			Status:      domain.EvalIneligible,
			GateReasons: reasons,
		}
	}

	b := scoreProduct(text, reasons, profile, req)
	return domain.Evaluation{
		Product:   p,
		Status:    domain.EvalScored,
		Breakdown: b,
		Total:     b.Total,
	}
}

// EvaluateAll evaluates every product in catalog order. With Workers > 1
// the evaluations run concurrently into a position-indexed slice, so the
// output is identical to the sequential path.
func (e *Engine) EvaluateAll(products []domain.Product, profiles map[string]domain.NutritionProfile, req domain.Requirement) []domain.Evaluation {
	evals := make([]domain.Evaluation, len(products))

	evalOne := func(i int) {
		p := products[i]
		var profile *domain.NutritionProfile
		if prof, ok := profiles[p.RegistrationNumber]; ok {
			profile = &prof
		}
		evals[i] = e.Evaluate(p, profile, req)
	}

	if e.cfg.Workers <= 1 || len(products) < 2 {
		for i := range products {
			evalOne(i)
		}
		return evals
	}

	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)
	for i := range products {
		g.Go(func() error {
			evalOne(i)
			return nil
		})
	}
	_ = g.Wait() // evaluations never return errors

	return evals
}

// Rank runs the full pipeline over the catalog and returns ranked results:
// only scored products with a strictly positive total, sorted by total
// descending, ties keeping catalog order. Gate failures yield no result at
// all, which is a different outcome from a scored product filtered at zero.
func (e *Engine) Rank(products []domain.Product, profiles map[string]domain.NutritionProfile, req domain.Requirement) []domain.Recommendation {
	return RankEvaluations(e.EvaluateAll(products, profiles, req))
}

// RankEvaluations filters and orders already-computed evaluations.
func RankEvaluations(evals []domain.Evaluation) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0, len(evals))
	for _, ev := range evals {
		if ev.Status != domain.EvalScored || ev.Total <= 0 {
			continue
		}
		recs = append(recs, domain.Recommendation{
			RegistrationNumber: ev.Product.RegistrationNumber,
			ProductName:        ev.Product.ProductName,
			Manufacturer:       ev.Product.Manufacturer,
			Category:           ev.Product.Category,
			EligibilityText:    ev.Product.EligibilityText,
			Total:              ev.Total,
			Tier:               ev.Breakdown.Tier,
			Breakdown:          *ev.Breakdown,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Total > recs[j].Total
	})

	return recs
}
