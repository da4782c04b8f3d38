package postgres

import (
	"context"
	"errors"
	"fmt"

	"dmars/domain"

	"gorm.io/gorm"
)

type ListingRepository struct {
	DB *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{
		DB: db,
	}
}

func (r *ListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(listing).Error; err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id uint64) (domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return domain.Listing{}, fmt.Errorf("context error: %w", err)
	}

	var listing domain.Listing

	err := r.DB.WithContext(ctx).First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Listing{}, errors.New("listing not found")
		}
		return domain.Listing{}, fmt.Errorf("failed to find listing: %w", err)
	}

	return listing, nil
}

func (r *ListingRepository) FindByDomainName(ctx context.Context, domainName string) (domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return domain.Listing{}, fmt.Errorf("context error: %w", err)
	}

	var listing domain.Listing

	err := r.DB.WithContext(ctx).Where("domain_name = ?", domainName).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Listing{}, errors.New("listing not found")
		}
		return domain.Listing{}, fmt.Errorf("failed to find listing: %w", err)
	}

	return listing, nil
}

func (r *ListingRepository) FindAll(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := r.DB.WithContext(ctx).Model(&domain.Listing{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.IsSold != nil {
		query = query.Where("is_sold = ?", *filter.IsSold)
	}
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var listings []domain.Listing
	if err := query.Order("id ASC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to find listings: %w", err)
	}

	return listings, nil
}

func (r *ListingRepository) Update(ctx context.Context, id uint64, update domain.ListingUpdate) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	// Only provided fields make it into the update
	updateData := map[string]interface{}{}
	if update.DomainName != nil {
		updateData["domain_name"] = *update.DomainName
	}
	if update.Category != nil {
		updateData["category"] = *update.Category
	}
	if update.Price != nil {
		updateData["price"] = *update.Price
	}
	if update.KeywordScore != nil {
		updateData["keyword_score"] = *update.KeywordScore
	}
	if update.Views != nil {
		updateData["views"] = *update.Views
	}
	if update.Clicks != nil {
		updateData["clicks"] = *update.Clicks
	}
	if update.IsSold != nil {
		updateData["is_sold"] = *update.IsSold
	}

	if len(updateData) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Model(&domain.Listing{}).Where("id = ?", id).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("listing not found or already deleted")
	}

	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Listing{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("listing not found or already deleted")
	}

	return nil
}

// FindRecommendable loads the unsold candidate set for one recommendation
// request in a single query so the batch works from a consistent read.
func (r *ListingRepository) FindRecommendable(ctx context.Context, query domain.RecommendationQuery) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).Model(&domain.Listing{}).Where("is_sold = ?", false)

	if query.PriceMin != nil {
		q = q.Where("price >= ?", *query.PriceMin)
	}
	if query.PriceMax != nil {
		q = q.Where("price <= ?", *query.PriceMax)
	}
	if query.Category != nil {
		q = q.Where("category = ?", *query.Category)
	}

	var listings []domain.Listing
	if err := q.Order("id ASC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to find recommendable listings: %w", err)
	}

	return listings, nil
}

// CategoryPrices returns the prices of all unsold listings in a category,
// the input to the price competitiveness snapshot.
func (r *ListingRepository) CategoryPrices(ctx context.Context, category string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var prices []float64
	err := r.DB.WithContext(ctx).
		Model(&domain.Listing{}).
		Where("category = ? AND is_sold = ?", category, false).
		Pluck("price", &prices).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find category prices: %w", err)
	}

	return prices, nil
}
