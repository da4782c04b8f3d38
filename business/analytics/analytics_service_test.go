package analytics

import (
	"context"
	"errors"
	"testing"

	"dmars/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalyticsRepo struct {
	total    int64
	sold     int64
	avgPrice float64

	categoryRows []domain.CategoryStats
	bandRows     []domain.PriceBandStats
	avgClicks    float64
	highInterest []domain.HighInterestListing

	countsErr error
	clicksErr error

	gotMinClicks float64
	gotTopN      int
}

func (f *fakeAnalyticsRepo) GlobalCounts(_ context.Context) (int64, int64, float64, error) {
	if f.countsErr != nil {
		return 0, 0, 0, f.countsErr
	}
	return f.total, f.sold, f.avgPrice, nil
}

func (f *fakeAnalyticsRepo) CategoryStats(_ context.Context) ([]domain.CategoryStats, error) {
	return f.categoryRows, nil
}

func (f *fakeAnalyticsRepo) PriceBandStats(_ context.Context) ([]domain.PriceBandStats, error) {
	return f.bandRows, nil
}

func (f *fakeAnalyticsRepo) AvgClicksUnsold(_ context.Context) (float64, error) {
	if f.clicksErr != nil {
		return 0, f.clicksErr
	}
	return f.avgClicks, nil
}

func (f *fakeAnalyticsRepo) HighInterestListings(_ context.Context, minClicks float64, topN int) ([]domain.HighInterestListing, error) {
	f.gotMinClicks = minClicks
	f.gotTopN = topN
	return f.highInterest, nil
}

func TestGetGlobalKPIs(t *testing.T) {
	repo := &fakeAnalyticsRepo{total: 3, sold: 1, avgPrice: 1234.567}
	svc := NewAnalyticsService(repo)

	kpis, err := svc.GetGlobalKPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), kpis.TotalDomains)
	assert.Equal(t, int64(1), kpis.SoldDomains)
	// 1/3 as a percentage, rounded to 2 decimals
	assert.Equal(t, 33.33, kpis.ConversionRate)
	assert.Equal(t, 1234.57, kpis.AveragePrice)
}

func TestGetGlobalKPIs_EmptyTable(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{})

	kpis, err := svc.GetGlobalKPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), kpis.TotalDomains)
	assert.Equal(t, 0.0, kpis.ConversionRate)
	assert.Equal(t, 0.0, kpis.AveragePrice)
}

func TestGetGlobalKPIs_RepoFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{countsErr: errors.New("connection refused")}
	svc := NewAnalyticsService(repo)

	_, err := svc.GetGlobalKPIs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compute global counts")
}

func TestGetCategoryStats_ComputesConversionRates(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		categoryRows: []domain.CategoryStats{
			{Category: "tech", Count: 7, SoldCount: 2, AveragePrice: 999.999},
			{Category: "finance", Count: 4, SoldCount: 0, AveragePrice: 250},
		},
	}
	svc := NewAnalyticsService(repo)

	stats, err := svc.GetCategoryStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "tech", stats[0].Category)
	assert.Equal(t, 28.57, stats[0].ConversionRate)
	assert.Equal(t, 1000.0, stats[0].AveragePrice)

	assert.Equal(t, "finance", stats[1].Category)
	assert.Equal(t, 0.0, stats[1].ConversionRate)
}

func TestGetSummary(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		total: 10, sold: 5, avgPrice: 500,
		categoryRows: []domain.CategoryStats{
			{Category: "tech", Count: 10, SoldCount: 5, AveragePrice: 500},
		},
	}
	svc := NewAnalyticsService(repo)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50.0, summary.Global.ConversionRate)
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, 50.0, summary.Categories[0].ConversionRate)
}

func TestGetDemandIndicators(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		avgClicks: 4.666666,
		highInterest: []domain.HighInterestListing{
			{ID: 1, DomainName: "hot.com", Category: "tech", Price: 1200, Views: 300, Clicks: 45, KeywordScore: 88},
		},
		bandRows: []domain.PriceBandStats{
			{PriceBand: "low", Count: 3, AveragePrice: 499.999, AverageViews: 10.333, AverageClicks: 1.339},
		},
	}
	svc := NewAnalyticsService(repo)

	indicators, err := svc.GetDemandIndicators(context.Background(), 5)
	require.NoError(t, err)

	// the unsold average clicks feeds the high-interest cutoff unrounded
	assert.Equal(t, 4.666666, repo.gotMinClicks)
	assert.Equal(t, 5, repo.gotTopN)
	assert.Equal(t, 4.67, indicators.BenchmarkAvgClicksUnsold)

	require.Len(t, indicators.HighInterestDomains, 1)
	assert.Equal(t, "hot.com", indicators.HighInterestDomains[0].DomainName)

	require.Len(t, indicators.PriceEngagement, 1)
	assert.Equal(t, 500.0, indicators.PriceEngagement[0].AveragePrice)
	assert.Equal(t, 10.33, indicators.PriceEngagement[0].AverageViews)
	assert.Equal(t, 1.34, indicators.PriceEngagement[0].AverageClicks)
}

func TestGetDemandIndicators_DefaultsTopN(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(repo)

	_, err := svc.GetDemandIndicators(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultTopN, repo.gotTopN)
}

func TestGetDemandIndicators_BenchmarkFailure(t *testing.T) {
	repo := &fakeAnalyticsRepo{clicksErr: errors.New("connection refused")}
	svc := NewAnalyticsService(repo)

	_, err := svc.GetDemandIndicators(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clicks benchmark")
}
