package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_evaluations_total",
			Help: "Count of per-product evaluations by outcome (ineligible or scored).",
		},
		[]string{"outcome"},
	)

	RecommendationTiersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_result_tiers_total",
			Help: "Count of ranked results served, by tier label.",
		},
		[]string{"tier"},
	)

	CacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_cache_total",
			Help: "Recommendation cache lookups by result (hit or miss).",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		EvaluationsTotal,
		RecommendationTiersTotal,
		CacheHitsTotal,
	)
}
