package router

import (
	"dmars/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupListingRoutes(api *echo.Group, handler *rest.ListingHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	listings := api.Group("/listings")

	listings.GET("", handler.GetAllListings)
	listings.GET("/:id", handler.GetListingByID)
	listings.POST("", handler.CreateListing, authRequired, adminOnly)
	listings.PATCH("/:id", handler.UpdateListing, authRequired, adminOnly)
	listings.DELETE("/:id", handler.DeleteListing, authRequired, adminOnly)
}

func SetupAnalyticsRoutes(api *echo.Group, handler *rest.AnalyticsHandler) {
	analytics := api.Group("/analytics")

	analytics.GET("/summary", handler.Summary)
	analytics.GET("/categories", handler.Categories)
	analytics.GET("/demand", handler.Demand)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations")

	reco.GET("/top", handler.Top)
	reco.GET("/category/:category", handler.ByCategory)
}
