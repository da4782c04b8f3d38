package rest

import (
	"context"
	"net/http"
	"time"

	"dmars/domain"
	"dmars/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	RecommendationHandler struct {
		validate       *validator.Validate
		rankingService RankingService
		timeout        time.Duration
	}

	RankingService interface {
		Recommend(ctx context.Context, query domain.RecommendationQuery) ([]domain.RankedListing, error)
		RecommendByCategory(ctx context.Context, category string, query domain.RecommendationQuery) ([]domain.RankedListing, error)
		Explanation() domain.ScoringExplanation
	}

	RecommendationQueryParams struct {
		Limit    int      `query:"limit" validate:"omitempty,gte=1,lte=100"`
		PriceMin *float64 `query:"price_min" validate:"omitempty,gte=0"`
		PriceMax *float64 `query:"price_max" validate:"omitempty,gte=0"`
	}
)

func NewRecommendationHandler(rankingService RankingService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:       validator.New(),
		rankingService: rankingService,
		timeout:        10 * time.Second,
	}
}

// GET /api/v1/recommendations/top?limit=10&price_min=100&price_max=5000
func (h *RecommendationHandler) Top(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.RecommendLatency)
	defer timer.ObserveDuration()
	metrics.RecommendRequests.Inc()

	var q RecommendationQueryParams
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.rankingService.Recommend(ctx, domain.RecommendationQuery{
		Limit:    q.Limit,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"count":               len(recs),
		"limit":               q.Limit,
		"recommendations":     recs,
		"ranking_explanation": h.rankingService.Explanation(),
	}))
}

// GET /api/v1/recommendations/category/:category?limit=10
func (h *RecommendationHandler) ByCategory(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.RecommendLatency)
	defer timer.ObserveDuration()
	metrics.RecommendRequests.Inc()

	category := c.Param("category")
	if category == "" {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "category is required"})
	}

	var q RecommendationQueryParams
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Limit <= 0 {
		q.Limit = 10
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.rankingService.RecommendByCategory(ctx, category, domain.RecommendationQuery{
		Limit:    q.Limit,
		PriceMin: q.PriceMin,
		PriceMax: q.PriceMax,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]interface{}{
		"category":            category,
		"count":               len(recs),
		"limit":               q.Limit,
		"recommendations":     recs,
		"ranking_explanation": h.rankingService.Explanation(),
	}))
}
