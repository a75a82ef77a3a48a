package recommender

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"
)

// ---- Repository interfaces ----

type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type NutritionRepository interface {
	FindAll(ctx context.Context) ([]domain.NutritionProfile, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event *domain.RecommendationEvent) error
	FindRecent(ctx context.Context, limit int) ([]domain.RecommendationEvent, error)
}

// ResultCache caches ranked responses keyed by normalized request. A nil
// cache disables caching; cache failures are never fatal.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, recs []domain.Recommendation) error
}

// ---- Usecase / Service ----

type RecommenderService struct {
	productRepo   ProductRepository
	nutritionRepo NutritionRepository
	eventRepo     EventRepository
	cache         ResultCache
	engine        *Engine
	cfg           Config
}

func NewRecommenderService(
	productRepo ProductRepository,
	nutritionRepo NutritionRepository,
	eventRepo EventRepository,
	cache ResultCache,
	cfg Config,
) *RecommenderService {
	return &RecommenderService{
		productRepo:   productRepo,
		nutritionRepo: nutritionRepo,
		eventRepo:     eventRepo,
		cache:         cache,
		engine:        NewEngine(cfg),
		cfg:           cfg,
	}
}

// Recommend extracts a requirement from the description, runs the pipeline
// over the whole catalog, and returns the ranked results.
func (s *RecommenderService) Recommend(ctx context.Context, description string, limit int) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description is required")
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	key := cacheKeyMaterial(description, limit)
	if s.cache != nil {
		recs, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("failed to read recommendation cache", "error", err)
		}
		if err == nil && ok {
			CacheHitsTotal.WithLabelValues("hit").Inc()
			// A cached response is still a served recommendation: the
			// audit row and tier counters are written either way.
			req := ExtractRequirement(description)
			s.saveEvent(ctx, TraceIDFromContext(ctx), description, req, recs)
			for _, r := range recs {
				RecommendationTiersTotal.WithLabelValues(r.Tier).Inc()
			}
			return recs, nil
		}
		CacheHitsTotal.WithLabelValues("miss").Inc()
	}

	req := ExtractRequirement(description)

	products, profiles, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"age", string(req.Age),
		"protein_allergy", req.ProteinAllergy,
		"lactose_intolerant", req.LactoseIntolerant,
		"catalog_size", len(products),
	)

	evals := s.engine.EvaluateAll(products, profiles, req)
	for _, ev := range evals {
		EvaluationsTotal.WithLabelValues(ev.Status).Inc()
	}

	recs := RankEvaluations(evals)
	if len(recs) > limit {
		recs = recs[:limit]
	}

	s.saveEvent(ctx, tid, description, req, recs)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, recs); err != nil {
			logger.Warn("failed to cache recommendations", "error", err)
		}
	}

	for _, r := range recs {
		RecommendationTiersTotal.WithLabelValues(r.Tier).Inc()
	}

	return recs, nil
}

// DebugRecommend returns every evaluation, gate failures included, for
// inspection. Never cached.
func (s *RecommenderService) DebugRecommend(ctx context.Context, description string, limit int) ([]domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if strings.TrimSpace(description) == "" {
		return nil, errors.New("description is required")
	}

	req := ExtractRequirement(description)

	products, profiles, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	evals := s.engine.EvaluateAll(products, profiles, req)
	if limit > 0 && len(evals) > limit {
		evals = evals[:limit]
	}

	return evals, nil
}

func (s *RecommenderService) loadCatalog(ctx context.Context) ([]domain.Product, map[string]domain.NutritionProfile, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load products: %w", err)
	}

	rows, err := s.nutritionRepo.FindAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load nutrition profiles: %w", err)
	}

	profiles := make(map[string]domain.NutritionProfile, len(rows))
	for _, p := range rows {
		profiles[p.RegistrationNumber] = p
	}

	return products, profiles, nil
}

// saveEvent persists the audit row; failure to log an event must not fail
// the recommendation.
func (s *RecommenderService) saveEvent(ctx context.Context, traceID, description string, req domain.Requirement, recs []domain.Recommendation) {
	if s.eventRepo == nil {
		return
	}

	topScore := 0
	if len(recs) > 0 {
		topScore = recs[0].Total
	}

	event := domain.RecommendationEvent{
		TraceID:     traceID,
		Description: description,
		Requirement: datatypes.JSONMap{
			"age":                string(req.Age),
			"protein_allergy":    req.ProteinAllergy,
			"lactose_intolerant": req.LactoseIntolerant,
			"needs_protein":      req.NeedsProtein,
			"needs_carbohydrate": req.NeedsCarbohydrate,
			"needs_nutrition":    req.NeedsNutrition,
		},
		ResultCount: len(recs),
		TopScore:    topScore,
	}

	if err := s.eventRepo.SaveEvent(ctx, &event); err != nil {
		logger.Warn("failed to save recommendation event", "error", err)
	}
}

// RecentEvents returns the newest recommendation audit records.
func (s *RecommenderService) RecentEvents(ctx context.Context, limit int) ([]domain.RecommendationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if s.eventRepo == nil {
		return nil, errors.New("event store is not configured")
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	return s.eventRepo.FindRecent(ctx, limit)
}

// cacheKeyMaterial normalizes the request into stable key material; the
// cache implementation encodes it further.
func cacheKeyMaterial(description string, limit int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(description)), limit)
}
