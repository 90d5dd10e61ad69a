package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

// CatalogRepo serves the read-only reference data: cars and categories.
type CatalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Category{}, &domain.Car{})
}

func (r *CatalogRepo) Cars(ctx context.Context) ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.WithContext(ctx).Preload("Category").Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepo) CarByID(ctx context.Context, id int64) (*domain.Car, error) {
	var c domain.Car
	if err := r.db.WithContext(ctx).Preload("Category").First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CatalogRepo) CarsByCategory(ctx context.Context, categoryID int64) ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.WithContext(ctx).Preload("Category").
		Where("category_id = ?", categoryID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepo) CarsByBrand(ctx context.Context, brand string) ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.WithContext(ctx).Preload("Category").
		Where("brand = ?", brand).Order("id ASC").Find(&out).Error
	return out, err
}

// SetCarStatus flips AVAILABLE/RENTED as bookings come and go.
func (r *CatalogRepo) SetCarStatus(ctx context.Context, id int64, status api.CarStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Car{}).
		Where("id = ?", id).Update("status", status).Error
}

func (r *CatalogRepo) Categories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepo) CategoryByID(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
