package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type PricingSvc struct {
	plans   PricingStore
	catalog CatalogStore
}

func NewPricingSvc(plans PricingStore, catalog CatalogStore) *PricingSvc {
	return &PricingSvc{plans: plans, catalog: catalog}
}

func (s *PricingSvc) ActivePlans(ctx context.Context, categoryID int64) ([]domain.PricingPlan, error) {
	return s.plans.ActiveByCategory(ctx, categoryID)
}

func (s *PricingSvc) FindPlan(ctx context.Context, categoryID int64, durationMonths, kmPackage int) (*domain.PricingPlan, error) {
	p, err := s.plans.Find(ctx, categoryID, durationMonths, kmPackage)
	if err != nil {
		return nil, fmt.Errorf("No pricing plan found for category: %d, duration: %d, km: %d",
			categoryID, durationMonths, kmPackage)
	}
	return p, nil
}

// Calculate is the only place a total is ever computed; clients display it,
// they never derive it.
func (s *PricingSvc) Calculate(ctx context.Context, categoryID int64, durationMonths, kmPackage int) (*api.PriceCalculation, error) {
	cat, err := s.catalog.CategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("Category not found with ID: %d", categoryID)
	}
	plan, err := s.FindPlan(ctx, categoryID, durationMonths, kmPackage)
	if err != nil {
		return nil, err
	}
	total := plan.PricePerMonth.Mul(decimal.NewFromInt(int64(durationMonths)))
	return &api.PriceCalculation{
		CategoryID:     cat.ID,
		CategoryName:   cat.Name,
		DurationMonths: durationMonths,
		KmPackage:      kmPackage,
		PricePerMonth:  plan.PricePerMonth,
		TotalAmount:    total,
	}, nil
}
