package rest

import (
	"context"
	"net/http"
	"time"

	"brewCompass/business/recommender"
	"brewCompass/domain"
	"brewCompass/pkg/logger"

	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	Items(ctx context.Context) ([]recommender.CatalogItem, error)
	Features(ctx context.Context) ([]string, error)
	PriceRange(ctx context.Context) (domain.PriceRange, error)
	Origins(ctx context.Context) ([]string, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

func (h *CatalogHandler) GetAllItems(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.catalogService.Items(ctx)
	if err != nil {
		logger.Error("Failed to list catalog items", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get catalog items",
		"items":   items,
	})
}

func (h *CatalogHandler) GetFeatures(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	features, err := h.catalogService.Features(ctx)
	if err != nil {
		logger.Error("Failed to list sensory features", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get sensory features",
		"features": features,
	})
}

func (h *CatalogHandler) GetPriceRange(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	priceRange, err := h.catalogService.PriceRange(ctx)
	if err != nil {
		if err.Error() == "no catalog item has a known price" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get price range", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":     "successfully get price range",
		"price_range": priceRange,
	})
}

func (h *CatalogHandler) GetOrigins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	origins, err := h.catalogService.Origins(ctx)
	if err != nil {
		logger.Error("Failed to list origins", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get origins",
		"origins": origins,
	})
}
