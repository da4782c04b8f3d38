package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dmars/domain"
	"dmars/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ListingService interface {
	GetAllListings(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error)
	GetListingByID(ctx context.Context, id uint64) (*domain.Listing, error)
	CreateListing(ctx context.Context, listing *domain.Listing) (*domain.Listing, error)
	UpdateListing(ctx context.Context, id uint64, update domain.ListingUpdate) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id uint64) error
}

type ListingHandler struct {
	listingService ListingService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewListingHandler(listingService ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type CreateListingRequest struct {
	DomainName   string  `json:"domain_name" validate:"required,max=255"`
	Category     string  `json:"category" validate:"required,max=100"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	KeywordScore float64 `json:"keyword_score" validate:"gte=0,lte=100"`
	Views        int64   `json:"views" validate:"gte=0"`
	Clicks       int64   `json:"clicks" validate:"gte=0"`
	IsSold       bool    `json:"is_sold"`
}

type UpdateListingRequest struct {
	DomainName   *string  `json:"domain_name" validate:"omitempty,min=1,max=255"`
	Category     *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Price        *float64 `json:"price" validate:"omitempty,gt=0"`
	KeywordScore *float64 `json:"keyword_score" validate:"omitempty,gte=0,lte=100"`
	Views        *int64   `json:"views" validate:"omitempty,gte=0"`
	Clicks       *int64   `json:"clicks" validate:"omitempty,gte=0"`
	IsSold       *bool    `json:"is_sold"`
}

type ListListingsQuery struct {
	Skip     int     `query:"skip" validate:"gte=0"`
	Limit    int     `query:"limit" validate:"omitempty,gte=1,lte=200"`
	Category *string `query:"category"`
	IsSold   *bool   `query:"is_sold"`
}

func (h *ListingHandler) GetAllListings(c echo.Context) error {
	var q ListListingsQuery
	if err := c.Bind(&q); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&q); err != nil {
		logger.Error("Failed to validate listing query", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	listings, err := h.listingService.GetAllListings(ctx, domain.ListingFilter{
		Category: q.Category,
		IsSold:   q.IsSold,
		Skip:     q.Skip,
		Limit:    q.Limit,
	})
	if err != nil {
		logger.Error("Failed to find all listings", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all listings",
		"listings": listings,
	})
}

func (h *ListingHandler) GetListingByID(c echo.Context) error {
	listingIDStr := c.Param("id")

	listingID, err := strconv.ParseUint(listingIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid listing id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	listing, err := h.listingService.GetListingByID(ctx, listingID)
	if err != nil {
		if err.Error() == "listing not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find listing by id",
		"listing": listing,
	})
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req CreateListingRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate listing request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	listing := &domain.Listing{
		DomainName:   req.DomainName,
		Category:     req.Category,
		Price:        req.Price,
		KeywordScore: req.KeywordScore,
		Views:        req.Views,
		Clicks:       req.Clicks,
		IsSold:       req.IsSold,
	}

	newListing, err := h.listingService.CreateListing(ctx, listing)
	if err != nil {
		logger.Error("Failed to create listing", "error", err)
		// Check if it's a validation error
		if err.Error() == "domain name is required" ||
			err.Error() == "category is required" ||
			err.Error() == "price must be greater than 0" ||
			err.Error() == "keyword score must be between 0 and 100" ||
			err.Error() == "views and clicks cannot be negative" ||
			err.Error() == "domain name already exists" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "listing successfully created",
		"listing": newListing,
	})
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	listingIDStr := c.Param("id")

	listingID, err := strconv.ParseUint(listingIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid listing id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UpdateListingRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate listing request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	update := domain.ListingUpdate{
		DomainName:   req.DomainName,
		Category:     req.Category,
		Price:        req.Price,
		KeywordScore: req.KeywordScore,
		Views:        req.Views,
		Clicks:       req.Clicks,
		IsSold:       req.IsSold,
	}

	updatedListing, err := h.listingService.UpdateListing(ctx, listingID, update)
	if err != nil {
		logger.Error("Failed to update listing", "error", err)
		if err.Error() == "listing not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "listing ID is required" ||
			err.Error() == "domain name is required" ||
			err.Error() == "category is required" ||
			err.Error() == "price must be greater than 0" ||
			err.Error() == "keyword score must be between 0 and 100" ||
			err.Error() == "views and clicks cannot be negative" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update listing",
		"listing": updatedListing,
	})
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	listingIDStr := c.Param("id")

	listingID, err := strconv.ParseUint(listingIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid listing id", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	err = h.listingService.DeleteListing(ctx, listingID)
	if err != nil {
		logger.Error("Failed to delete listing", "error", err)
		if err.Error() == "listing not found" || err.Error() == "invalid listing id" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "listing successfully deleted",
		"listing_id": listingID,
	})
}
