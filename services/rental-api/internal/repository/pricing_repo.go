package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type PricingRepo struct{ db *gorm.DB }

func NewPricingRepo(db *gorm.DB) *PricingRepo {
	return &PricingRepo{db: db}
}

func (r *PricingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.PricingPlan{})
}

func (r *PricingRepo) ActiveByCategory(ctx context.Context, categoryID int64) ([]domain.PricingPlan, error) {
	var out []domain.PricingPlan
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("duration_months ASC, km_package ASC").
		Find(&out).Error
	return out, err
}

func (r *PricingRepo) Find(ctx context.Context, categoryID int64, durationMonths, kmPackage int) (*domain.PricingPlan, error) {
	var p domain.PricingPlan
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND duration_months = ? AND km_package = ? AND is_active = ?",
			categoryID, durationMonths, kmPackage, true).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
