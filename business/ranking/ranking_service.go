package ranking

import (
	"context"
	"fmt"
	"sort"

	"dmars/domain"
	"dmars/pkg/logger"
)

const defaultLimit = 10

// ListingRepository is the read-only store contract the ranking service
// needs: one consistent candidate fetch per request plus the unsold price
// set per category.
type ListingRepository interface {
	FindRecommendable(ctx context.Context, query domain.RecommendationQuery) ([]domain.Listing, error)
	CategoryPrices(ctx context.Context, category string) ([]float64, error)
}

type RankingService struct {
	listingRepo ListingRepository
	engine      *Engine
}

func NewRankingService(listingRepo ListingRepository, engine *Engine) *RankingService {
	return &RankingService{
		listingRepo: listingRepo,
		engine:      engine,
	}
}

// Recommend returns the top-ranked unsold listings matching the query
// filters, sorted by total score descending with listing ID as the
// tie-break, truncated to the query limit.
func (s *RankingService) Recommend(ctx context.Context, query domain.RecommendationQuery) ([]domain.RankedListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if query.Limit <= 0 {
		query.Limit = defaultLimit
	}

	candidates, err := s.listingRepo.FindRecommendable(ctx, query)
	if err != nil {
		logger.Error("failed to load recommendation candidates", "error", err)
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	// Price snapshots are built once per category per request so every
	// candidate in a category is compared against the same bounds.
	snapshots := make(map[string]CategoryPriceSnapshot)

	ranked := make([]domain.RankedListing, 0, len(candidates))
	for _, listing := range candidates {
		snapshot, ok := snapshots[listing.Category]
		if !ok {
			snapshot = s.categorySnapshot(ctx, listing.Category)
			snapshots[listing.Category] = snapshot
		}

		ranked = append(ranked, domain.RankedListing{
			ID:           listing.ID,
			DomainName:   listing.DomainName,
			Category:     listing.Category,
			Price:        listing.Price,
			KeywordScore: listing.KeywordScore,
			Views:        listing.Views,
			Clicks:       listing.Clicks,
			CTR:          round4(listing.CTR()),
			Ranking:      s.engine.Rank(listing, snapshot),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Ranking.TotalScore != ranked[j].Ranking.TotalScore {
			return ranked[i].Ranking.TotalScore > ranked[j].Ranking.TotalScore
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > query.Limit {
		ranked = ranked[:query.Limit]
	}

	return ranked, nil
}

// RecommendByCategory folds the category filter into the same pipeline for
// category-scoped browsing.
func (s *RankingService) RecommendByCategory(ctx context.Context, category string, query domain.RecommendationQuery) ([]domain.RankedListing, error) {
	query.Category = &category
	return s.Recommend(ctx, query)
}

// Explanation exposes the scoring configuration so API responses can echo
// why a score looks the way it does.
func (s *RankingService) Explanation() domain.ScoringExplanation {
	cfg := s.engine.Config()
	return domain.ScoringExplanation{
		Weights: cfg.WeightMap(),
		Bonuses: cfg.BonusMap(),
		ScoringComponents: []string{
			"keyword_relevance - domain keyword score relevance (0-100)",
			"engagement - click-through rate as conversion signal",
			"price_competitiveness - price ranking within category",
			"conversion_signal - sold status and high-interest bonus",
		},
	}
}

// categorySnapshot builds the price bounds for one category. A failed
// lookup is logged and degraded to a non-comparable snapshot so ranking
// stays available without category statistics.
func (s *RankingService) categorySnapshot(ctx context.Context, category string) CategoryPriceSnapshot {
	prices, err := s.listingRepo.CategoryPrices(ctx, category)
	if err != nil {
		logger.Warn("failed to load category prices, using neutral price credit", "category", category, "error", err)
		return CategoryPriceSnapshot{}
	}

	return NewCategoryPriceSnapshot(prices)
}
