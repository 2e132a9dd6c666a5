package postgres

import (
	"context"
	"fmt"

	"brewCompass/domain"

	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

// FindAll reads the whole coffees table. The recommender loads the
// catalog exactly once at startup, so there is no pagination.
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.CoffeeRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.CoffeeRow
	err := r.DB.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find coffees: %w", err)
	}

	return rows, nil
}
