package postgres

import (
	"context"
	"fmt"

	"dmars/domain"

	"gorm.io/gorm"
)

// Price band boundaries for the demand analytics.
const priceBandCase = `CASE WHEN price < 1000 THEN 'low' WHEN price < 10000 THEN 'mid' ELSE 'high' END`

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		DB: db,
	}
}

func (r *AnalyticsRepository) GlobalCounts(ctx context.Context) (int64, int64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("context error: %w", err)
	}

	var total int64
	if err := r.DB.WithContext(ctx).Model(&domain.Listing{}).Count(&total).Error; err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	var sold int64
	err := r.DB.WithContext(ctx).Model(&domain.Listing{}).Where("is_sold = ?", true).Count(&sold).Error
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count sold listings: %w", err)
	}

	var avgPrice float64
	row := r.DB.WithContext(ctx).Model(&domain.Listing{}).Select("COALESCE(AVG(price), 0)").Row()
	if err := row.Scan(&avgPrice); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to compute average price: %w", err)
	}

	return total, sold, avgPrice, nil
}

func (r *AnalyticsRepository) CategoryStats(ctx context.Context) ([]domain.CategoryStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CategoryStats
	err := r.DB.WithContext(ctx).
		Model(&domain.Listing{}).
		Select(`category,
			COUNT(id) AS count,
			SUM(CASE WHEN is_sold THEN 1 ELSE 0 END) AS sold_count,
			COALESCE(AVG(price), 0) AS average_price`).
		Group("category").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category stats: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepository) PriceBandStats(ctx context.Context) ([]domain.PriceBandStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.PriceBandStats
	err := r.DB.WithContext(ctx).
		Model(&domain.Listing{}).
		Select(priceBandCase + ` AS price_band,
			COUNT(id) AS count,
			COALESCE(AVG(price), 0) AS average_price,
			COALESCE(AVG(views), 0) AS average_views,
			COALESCE(AVG(clicks), 0) AS average_clicks`).
		Group(priceBandCase).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate price bands: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsRepository) AvgClicksUnsold(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	var avgClicks float64
	row := r.DB.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("is_sold = ?", false).
		Select("COALESCE(AVG(clicks), 0)").
		Row()
	if err := row.Scan(&avgClicks); err != nil {
		return 0, fmt.Errorf("failed to compute average clicks: %w", err)
	}

	return avgClicks, nil
}

func (r *AnalyticsRepository) HighInterestListings(ctx context.Context, minClicks float64, topN int) ([]domain.HighInterestListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.HighInterestListing
	err := r.DB.WithContext(ctx).
		Model(&domain.Listing{}).
		Select("id, domain_name, category, price, views, clicks, keyword_score").
		Where("is_sold = ?", false).
		Where("clicks >= ?", minClicks).
		Order("clicks DESC").
		Limit(topN).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find high-interest listings: %w", err)
	}

	return rows, nil
}
