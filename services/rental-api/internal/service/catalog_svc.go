package service

import (
	"context"
	"fmt"

	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type CatalogSvc struct {
	catalog CatalogStore
}

func NewCatalogSvc(catalog CatalogStore) *CatalogSvc {
	return &CatalogSvc{catalog: catalog}
}

func (s *CatalogSvc) Cars(ctx context.Context) ([]domain.Car, error) {
	return s.catalog.Cars(ctx)
}

func (s *CatalogSvc) CarByID(ctx context.Context, id int64) (*domain.Car, error) {
	c, err := s.catalog.CarByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Car not found with ID: %d", id)
	}
	return c, nil
}

func (s *CatalogSvc) CarsByCategory(ctx context.Context, categoryID int64) ([]domain.Car, error) {
	return s.catalog.CarsByCategory(ctx, categoryID)
}

func (s *CatalogSvc) CarsByBrand(ctx context.Context, brand string) ([]domain.Car, error) {
	return s.catalog.CarsByBrand(ctx, brand)
}

func (s *CatalogSvc) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.catalog.Categories(ctx)
}

func (s *CatalogSvc) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	c, err := s.catalog.CategoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Category not found with ID: %d", id)
	}
	return c, nil
}
