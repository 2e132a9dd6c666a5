package recommender

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"brewCompass/domain"
	"brewCompass/pkg/logger"

	"gonum.org/v1/gonum/floats"
)

const defaultTopN = 5

// Query is one recommendation request. It is built fresh per request
// and discarded afterwards; nothing from it is cached on the catalog.
type Query struct {
	// Preferences must carry all six sensory features in [0,1], in the
	// same orientation as the scaled catalog. Unknown keys are ignored.
	Preferences map[string]float64
	Text        string
	TopN        int
	Alpha       float64
	// MaxBudgetPer100g, when set, excludes items costing more per
	// 100 g and items whose price is unknown.
	MaxBudgetPer100g *float64
}

// Service ranks catalog items against a user query by blending sensory
// closeness with tasting-note text similarity. It is a pure read-side
// computation over the fitted catalog.
type Service struct {
	catalog *FittedCatalog
}

func NewService(catalog *FittedCatalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) FeatureNames() []string {
	return FeatureNames()
}

func (s *Service) PriceRange() (min, max float64, ok bool) {
	return s.catalog.PriceRange()
}

// Recommend returns the top-N catalog items for the query, scored as
// alpha*numeric_similarity + (1-alpha)*text_similarity. A budget that
// excludes every item yields an empty result, not an error. Identical
// queries always return identical ordered results.
func (s *Service) Recommend(ctx context.Context, q Query) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if q.Alpha < 0 || q.Alpha > 1 {
		return nil, errors.New("alpha must be in [0,1]")
	}
	if q.TopN <= 0 {
		q.TopN = defaultTopN
	}

	prefs, err := buildPreferenceVector(q.Preferences)
	if err != nil {
		return nil, err
	}

	candidates := s.filterByBudget(q.MaxBudgetPer100g)

	recommendRequestsTotal.Inc()

	if len(candidates) == 0 {
		emptyResultsTotal.Inc()
		logger.Debug("recommend produced no candidates",
			"trace_id", TraceIDFromContext(ctx),
			"budget", q.MaxBudgetPer100g,
		)
		return []domain.Recommendation{}, nil
	}

	// Numeric similarity: Euclidean distance to each candidate,
	// min-max normalized across the candidate set, inverted so closer
	// items score higher. Equidistant candidates all tie at 1.
	dists := make([]float64, len(candidates))
	for i, idx := range candidates {
		dists[i] = floats.Distance(prefs, s.catalog.items[idx].Sensory, 2)
	}
	minDist := floats.Min(dists)
	span := floats.Max(dists) - minDist

	// Text similarity: cosine against the fitted document rows,
	// selected by stable catalog index, never by post-filter position.
	// Rows and the query vector are L2-normalized at construction, so
	// the dot product is the cosine.
	queryVec := s.catalog.vectorizer.transform(Preprocess(q.Text))

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(candidates))
	for i, idx := range candidates {
		numericSim := 1.0
		if span > 0 {
			numericSim = 1 - (dists[i]-minDist)/span
		}
		textSim := floats.Dot(queryVec, s.catalog.docMatrix[idx])

		ranked[i] = scored{
			idx:   idx,
			score: q.Alpha*numericSim + (1-q.Alpha)*textSim,
		}
	}

	// Candidates were collected in catalog order, so a stable sort
	// breaks ties by original catalog position.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if q.TopN > len(ranked) {
		q.TopN = len(ranked)
	}

	out := make([]domain.Recommendation, 0, q.TopN)
	for _, r := range ranked[:q.TopN] {
		item := s.catalog.items[r.idx]
		out = append(out, domain.Recommendation{
			Name:         item.Name,
			Origin:       item.Origin,
			Roast:        item.Roast,
			Agtron:       item.Sensory[idxAgtron],
			Aroma:        item.Sensory[idxAroma],
			Acid:         item.Sensory[idxAcid],
			Body:         item.Sensory[idxBody],
			Flavor:       item.Sensory[idxFlavor],
			Aftertaste:   item.Sensory[idxAftertaste],
			PricePer100g: item.PricePer100g,
			Description:  item.Description,
			Score:        r.score,
		})
	}

	logger.Debug("recommend served",
		"trace_id", TraceIDFromContext(ctx),
		"candidates", len(candidates),
		"returned", len(out),
		"alpha", q.Alpha,
	)

	return out, nil
}

// filterByBudget returns the stable indices of eligible items, in
// catalog order. Items with an unknown price never pass a budget
// filter.
func (s *Service) filterByBudget(budget *float64) []int {
	out := make([]int, 0, len(s.catalog.items))
	for _, item := range s.catalog.items {
		if budget != nil {
			if item.PricePer100g == nil || *item.PricePer100g > *budget {
				continue
			}
		}
		out = append(out, item.Index)
	}
	return out
}
