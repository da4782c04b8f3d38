package rest

import (
	"context"
	"net/http"
	"time"

	"dmars/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	AnalyticsHandler struct {
		validate         *validator.Validate
		analyticsService AnalyticsService
		timeout          time.Duration
	}

	AnalyticsService interface {
		GetSummary(ctx context.Context) (*domain.AnalyticsSummary, error)
		GetCategoryStats(ctx context.Context) ([]domain.CategoryStats, error)
		GetDemandIndicators(ctx context.Context, topN int) (*domain.DemandIndicators, error)
	}

	DemandQuery struct {
		TopN int `query:"top_n" validate:"omitempty,gte=1,lte=100"`
	}
)

func NewAnalyticsHandler(analyticsService AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		validate:         validator.New(),
		analyticsService: analyticsService,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.analyticsService.GetSummary(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

// GET /api/v1/analytics/categories
func (h *AnalyticsHandler) Categories(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stats, err := h.analyticsService.GetCategoryStats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stats))
}

// GET /api/v1/analytics/demand?top_n=10
func (h *AnalyticsHandler) Demand(c echo.Context) error {
	var q DemandQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.TopN <= 0 {
		q.TopN = 10
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	indicators, err := h.analyticsService.GetDemandIndicators(ctx, q.TopN)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(indicators))
}
