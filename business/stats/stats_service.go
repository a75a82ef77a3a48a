package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type NutritionRepository interface {
	FindAll(ctx context.Context) ([]domain.NutritionProfile, error)
}

type statsService struct {
	productRepo   ProductRepository
	nutritionRepo NutritionRepository
}

func NewStatsService(productRepo ProductRepository, nutritionRepo NutritionRepository) *statsService {
	return &statsService{
		productRepo:   productRepo,
		nutritionRepo: nutritionRepo,
	}
}

// ApprovalTrends counts approvals per year split by source. Products whose
// registration number could not be parsed carry year 0 and are left out.
func (s *statsService) ApprovalTrends(ctx context.Context) ([]domain.YearlyApprovals, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load products for approval trends", err)
		return nil, err
	}

	byYear := make(map[int]*domain.YearlyApprovals)
	for _, p := range products {
		if p.ApprovalYear == 0 {
			continue
		}
		entry, ok := byYear[p.ApprovalYear]
		if !ok {
			entry = &domain.YearlyApprovals{Year: p.ApprovalYear}
			byYear[p.ApprovalYear] = entry
		}
		switch p.Source {
		case domain.SourceImported:
			entry.Imported++
		case domain.SourceDomestic:
			entry.Domestic++
		}
	}

	trends := make([]domain.YearlyApprovals, 0, len(byYear))
	for _, entry := range byYear {
		trends = append(trends, *entry)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Year < trends[j].Year })

	return trends, nil
}

// CategoryCounts reports product counts per category sorted descending,
// each with its share of the catalog, plus the combined share of the
// three largest categories.
func (s *statsService) CategoryCounts(ctx context.Context) (*domain.CategoryReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load products for category counts", err)
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	report := &domain.CategoryReport{}
	for category, n := range counts {
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total)
		}
		report.Categories = append(report.Categories, domain.CategoryCount{
			Category: category,
			Count:    n,
			Share:    share,
		})
	}
	sort.Slice(report.Categories, func(i, j int) bool {
		if report.Categories[i].Count != report.Categories[j].Count {
			return report.Categories[i].Count > report.Categories[j].Count
		}
		return report.Categories[i].Category < report.Categories[j].Category
	})

	for i, c := range report.Categories {
		if i == 3 {
			break
		}
		report.TopThree += c.Share
	}

	return report, nil
}

// PopulationSplit counts products per population class and source.
func (s *statsService) PopulationSplit(ctx context.Context) ([]domain.PopulationSourceCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load products for population split", err)
		return nil, err
	}

	type key struct {
		class  string
		source string
	}
	counts := make(map[key]int)
	for _, p := range products {
		if p.PopulationClass == "" || p.Source == "" {
			continue
		}
		counts[key{p.PopulationClass, p.Source}]++
	}

	split := make([]domain.PopulationSourceCount, 0, len(counts))
	for k, n := range counts {
		split = append(split, domain.PopulationSourceCount{
			PopulationClass: k.class,
			Source:          k.source,
			Count:           n,
		})
	}
	sort.Slice(split, func(i, j int) bool {
		if split[i].PopulationClass != split[j].PopulationClass {
			return split[i].PopulationClass < split[j].PopulationClass
		}
		return split[i].Source < split[j].Source
	})

	return split, nil
}

// NutrientDistribution summarizes the fat and protein columns and reports
// the Pearson correlation between them over profiles carrying both.
func (s *statsService) NutrientDistribution(ctx context.Context) (*domain.DistributionReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	profiles, err := s.nutritionRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load nutrition profiles", err)
		return nil, err
	}

	var fats, proteins []float64
	var pairedFat, pairedProtein []float64
	for _, p := range profiles {
		if p.FatG > 0 {
			fats = append(fats, p.FatG)
		}
		if p.ProteinG > 0 {
			proteins = append(proteins, p.ProteinG)
		}
		if p.FatG > 0 && p.ProteinG > 0 {
			pairedFat = append(pairedFat, p.FatG)
			pairedProtein = append(pairedProtein, p.ProteinG)
		}
	}

	report := &domain.DistributionReport{
		Summaries: []domain.NutrientSummary{
			summarize(domain.NutrientFat, fats),
			summarize(domain.NutrientProtein, proteins),
		},
		Correlation: correlation(pairedFat, pairedProtein),
	}

	return report, nil
}

// PhraseFrequency counts how often each known condition phrase appears
// across the catalog's eligibility text, returning the top n.
func (s *statsService) PhraseFrequency(ctx context.Context, n int) ([]domain.PhraseCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load products for phrase frequency", err)
		return nil, err
	}

	counts := make(map[string]int)
	for _, p := range products {
		text := strings.ToLower(p.EligibilityText)
		for _, phrase := range conditionVocabulary {
			if strings.Contains(text, phrase) {
				counts[phrase]++
			}
		}
	}

	freq := make([]domain.PhraseCount, 0, len(counts))
	for phrase, count := range counts {
		freq = append(freq, domain.PhraseCount{Phrase: phrase, Count: count})
	}
	sort.Slice(freq, func(i, j int) bool {
		if freq[i].Count != freq[j].Count {
			return freq[i].Count > freq[j].Count
		}
		return freq[i].Phrase < freq[j].Phrase
	})

	if n > 0 && len(freq) > n {
		freq = freq[:n]
	}

	return freq, nil
}

// conditionVocabulary is the phrase set counted by PhraseFrequency. It
// covers the conditions and needs the catalog's eligibility text speaks in.
var conditionVocabulary = []string{
	"protein supplementation",
	"carbohydrate supplementation",
	"nutritional supplementation",
	"water and electrolyte supplementation",
	"medium-chain fat",
	"feeding restriction",
	"malabsorption",
	"metabolic disorder",
	"dysphagia",
	"malnutrition",
	"dehydration",
	"digestive system",
	"electrolyte",
	"protein allergy",
	"lactose intolerance",
	"infant",
	"surgery",
	"trauma",
	"diabetes",
	"kidney disease",
	"liver disease",
	"tumor",
}

func summarize(nutrient string, values []float64) domain.NutrientSummary {
	s := domain.NutrientSummary{Nutrient: nutrient, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	s.Min = values[0]
	s.Max = values[0]
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	if len(values) > 1 {
		var ss float64
		for _, v := range values {
			d := v - s.Mean
			ss += d * d
		}
		s.Std = math.Sqrt(ss / float64(len(values)-1))
	}

	return s
}

func correlation(xs, ys []float64) float64 {
	if len(xs) != len(ys) || len(xs) < 2 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(len(xs))
	meanY := sumY / float64(len(ys))

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}

	return cov / math.Sqrt(varX*varY)
}
