package router

import (
	"brewCompass/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupCatalogRoutes(api *echo.Group, handler *rest.CatalogHandler) {
	catalog := api.Group("/catalog")

	catalog.GET("", handler.GetAllItems)
	catalog.GET("/features", handler.GetFeatures)
	catalog.GET("/price-range", handler.GetPriceRange)
	catalog.GET("/origins", handler.GetOrigins)
}

func SetupRecommendRoutes(api *echo.Group, handler *rest.RecommendHandler, metrics echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", metrics)

	reco.POST("", handler.Recommend)
	reco.POST("/guided", handler.GuidedRecommend)
}

func SetupHealthRoutes(api *echo.Group) {
	api.GET("/healthz", rest.Healthz)
}
