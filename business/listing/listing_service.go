package listing

import (
	"context"
	"errors"
	"fmt"

	"dmars/domain"
	"dmars/pkg/logger"
)

// ListingRepository contract interface
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	FindByID(ctx context.Context, id uint64) (domain.Listing, error)
	FindByDomainName(ctx context.Context, domainName string) (domain.Listing, error)
	FindAll(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	Update(ctx context.Context, id uint64, update domain.ListingUpdate) error
	Delete(ctx context.Context, id uint64) error
}

type listingService struct {
	listingRepo ListingRepository
}

func NewListingService(listingRepo ListingRepository) *listingService {
	return &listingService{
		listingRepo: listingRepo,
	}
}

func (s *listingService) GetAllListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing domains")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}

	listings, err := s.listingRepo.FindAll(ctx, filter)
	if err != nil {
		logger.Error("failed to find listings", "error", err)
		return nil, err
	}

	return listings, nil
}

func (s *listingService) GetListingByID(ctx context.Context, id uint64) (*domain.Listing, error) {
	if id == 0 {
		logger.Error("invalid listing id")
		return nil, errors.New("invalid listing id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting listing")
		return nil, fmt.Errorf("context error: %w", err)
	}

	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find listing by id", "error", err)
		return nil, err
	}

	return &listing, nil
}

func (s *listingService) CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating listing")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if listing.DomainName == "" {
		logger.Error("Invalid listing data: domain name is required")
		return nil, errors.New("domain name is required")
	}

	if listing.Category == "" {
		logger.Error("Invalid listing data: category is required")
		return nil, errors.New("category is required")
	}

	if listing.Price <= 0 {
		logger.Error("Invalid listing data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if listing.KeywordScore < 0 || listing.KeywordScore > 100 {
		logger.Error("Invalid listing data: keyword score must be between 0 and 100")
		return nil, errors.New("keyword score must be between 0 and 100")
	}

	if listing.Views < 0 || listing.Clicks < 0 {
		logger.Error("Invalid listing data: views and clicks cannot be negative")
		return nil, errors.New("views and clicks cannot be negative")
	}

	// Reject duplicates by domain name
	_, err := s.listingRepo.FindByDomainName(ctx, listing.DomainName)
	if err == nil {
		logger.Error("duplicate domain name", "domain_name", listing.DomainName)
		return nil, errors.New("domain name already exists")
	}
	if err.Error() != "listing not found" {
		logger.Error("failed to check domain name", "error", err)
		return nil, fmt.Errorf("failed to check domain name: %w", err)
	}

	if err := s.listingRepo.Create(ctx, listing); err != nil {
		logger.Error("failed to create listing", "error", err)
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	logger.Info("listing created successfully", "domain_name", listing.DomainName)

	return listing, nil
}

func (s *listingService) UpdateListing(ctx context.Context, id uint64, update domain.ListingUpdate) (*domain.Listing, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating listing")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if id == 0 {
		logger.Error("Invalid listing data: ID is required")
		return nil, errors.New("listing ID is required")
	}

	// Validation on provided fields only
	if update.DomainName != nil && *update.DomainName == "" {
		logger.Error("Invalid listing data: domain name is required")
		return nil, errors.New("domain name is required")
	}

	if update.Category != nil && *update.Category == "" {
		logger.Error("Invalid listing data: category is required")
		return nil, errors.New("category is required")
	}

	if update.Price != nil && *update.Price <= 0 {
		logger.Error("Invalid listing data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if update.KeywordScore != nil && (*update.KeywordScore < 0 || *update.KeywordScore > 100) {
		logger.Error("Invalid listing data: keyword score must be between 0 and 100")
		return nil, errors.New("keyword score must be between 0 and 100")
	}

	if (update.Views != nil && *update.Views < 0) || (update.Clicks != nil && *update.Clicks < 0) {
		logger.Error("Invalid listing data: views and clicks cannot be negative")
		return nil, errors.New("views and clicks cannot be negative")
	}

	// Verify listing exists
	_, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("listing not found", "error", err)
		return nil, errors.New("listing not found")
	}

	if err := s.listingRepo.Update(ctx, id, update); err != nil {
		logger.Error("failed to update listing", "error", err)
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	// Get updated listing from database
	updatedListing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to fetch updated listing", "error", err)
		return nil, fmt.Errorf("failed to fetch updated listing: %w", err)
	}

	logger.Info("listing updated successfully", "id", id)

	return &updatedListing, nil
}

func (s *listingService) DeleteListing(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("invalid listing id when deleting listing")
		return errors.New("invalid listing id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting listing")
		return fmt.Errorf("context error: %w", err)
	}

	// Verify listing exists
	_, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("listing not found", "error", err)
		return errors.New("listing not found")
	}

	if err := s.listingRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete listing", "error", err)
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	logger.Info("listing deleted successfully", "id", id)

	return nil
}
