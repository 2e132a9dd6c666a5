package catalog

import (
	"context"
	"errors"
	"fmt"

	"brewCompass/business/recommender"
	"brewCompass/domain"
)

// Service exposes read-only views of the fitted catalog to the HTTP
// layer. The catalog never changes after load, so every method is a
// plain read.
type Service struct {
	catalog *recommender.FittedCatalog
}

func NewService(catalog *recommender.FittedCatalog) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) Items(ctx context.Context) ([]recommender.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.catalog.Items(), nil
}

func (s *Service) Features(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return recommender.FeatureNames(), nil
}

func (s *Service) PriceRange(ctx context.Context) (domain.PriceRange, error) {
	if err := ctx.Err(); err != nil {
		return domain.PriceRange{}, fmt.Errorf("context error: %w", err)
	}

	min, max, ok := s.catalog.PriceRange()
	if !ok {
		return domain.PriceRange{}, errors.New("no catalog item has a known price")
	}

	return domain.PriceRange{Min: min, Max: max}, nil
}

func (s *Service) Origins(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.catalog.Origins(), nil
}
