package analytics

import (
	"context"
	"fmt"
	"math"

	"dmars/domain"
	"dmars/pkg/logger"
)

const defaultTopN = 10

// AnalyticsRepository is the aggregation-query contract. Repositories
// return raw aggregates; rates and rounding are computed here so the SQL
// stays simple.
type AnalyticsRepository interface {
	GlobalCounts(ctx context.Context) (total int64, sold int64, avgPrice float64, err error)
	CategoryStats(ctx context.Context) ([]domain.CategoryStats, error)
	PriceBandStats(ctx context.Context) ([]domain.PriceBandStats, error)
	AvgClicksUnsold(ctx context.Context) (float64, error)
	HighInterestListings(ctx context.Context, minClicks float64, topN int) ([]domain.HighInterestListing, error)
}

type analyticsService struct {
	analyticsRepo AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo AnalyticsRepository) *analyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
	}
}

// GetSummary combines the global KPIs with the per-category breakdown.
func (s *analyticsService) GetSummary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	global, err := s.GetGlobalKPIs(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.GetCategoryStats(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AnalyticsSummary{
		Global:     *global,
		Categories: categories,
	}, nil
}

func (s *analyticsService) GetGlobalKPIs(ctx context.Context) (*domain.GlobalKPIs, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing global KPIs")
		return nil, fmt.Errorf("context error: %w", err)
	}

	total, sold, avgPrice, err := s.analyticsRepo.GlobalCounts(ctx)
	if err != nil {
		logger.Error("failed to compute global counts", "error", err)
		return nil, fmt.Errorf("failed to compute global counts: %w", err)
	}

	conversionRate := 0.0
	if total > 0 {
		conversionRate = float64(sold) / float64(total) * 100
	}

	return &domain.GlobalKPIs{
		TotalDomains:   total,
		SoldDomains:    sold,
		ConversionRate: round2(conversionRate),
		AveragePrice:   round2(avgPrice),
	}, nil
}

func (s *analyticsService) GetCategoryStats(ctx context.Context) ([]domain.CategoryStats, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing category stats")
		return nil, fmt.Errorf("context error: %w", err)
	}

	rows, err := s.analyticsRepo.CategoryStats(ctx)
	if err != nil {
		logger.Error("failed to compute category stats", "error", err)
		return nil, fmt.Errorf("failed to compute category stats: %w", err)
	}

	results := make([]domain.CategoryStats, 0, len(rows))
	for _, row := range rows {
		conversionRate := 0.0
		if row.Count > 0 {
			conversionRate = float64(row.SoldCount) / float64(row.Count) * 100
		}

		results = append(results, domain.CategoryStats{
			Category:       row.Category,
			Count:          row.Count,
			SoldCount:      row.SoldCount,
			ConversionRate: round2(conversionRate),
			AveragePrice:   round2(row.AveragePrice),
		})
	}

	return results, nil
}

// GetDemandIndicators reports unsold listings with clicks at or above the
// unsold average, plus engagement patterns per price band.
func (s *analyticsService) GetDemandIndicators(ctx context.Context, topN int) (*domain.DemandIndicators, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when computing demand indicators")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if topN <= 0 {
		topN = defaultTopN
	}

	avgClicks, err := s.analyticsRepo.AvgClicksUnsold(ctx)
	if err != nil {
		logger.Error("failed to compute unsold clicks benchmark", "error", err)
		return nil, fmt.Errorf("failed to compute clicks benchmark: %w", err)
	}

	highInterest, err := s.analyticsRepo.HighInterestListings(ctx, avgClicks, topN)
	if err != nil {
		logger.Error("failed to find high-interest listings", "error", err)
		return nil, fmt.Errorf("failed to find high-interest listings: %w", err)
	}

	bandRows, err := s.analyticsRepo.PriceBandStats(ctx)
	if err != nil {
		logger.Error("failed to compute price band stats", "error", err)
		return nil, fmt.Errorf("failed to compute price band stats: %w", err)
	}

	bands := make([]domain.PriceBandStats, 0, len(bandRows))
	for _, row := range bandRows {
		bands = append(bands, domain.PriceBandStats{
			PriceBand:     row.PriceBand,
			Count:         row.Count,
			AveragePrice:  round2(row.AveragePrice),
			AverageViews:  round2(row.AverageViews),
			AverageClicks: round2(row.AverageClicks),
		})
	}

	return &domain.DemandIndicators{
		HighInterestDomains:      highInterest,
		PriceEngagement:          bands,
		BenchmarkAvgClicksUnsold: round2(avgClicks),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
