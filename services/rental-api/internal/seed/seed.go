package seed

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

// Run populates an empty database with the demo catalog: three categories,
// their pricing grids and a small fleet. It is a no-op once categories exist,
// so restarting the service never duplicates data.
func Run(db *gorm.DB) error {
	var n int64
	if err := db.Model(&domain.Category{}).Count(&n).Error; err != nil {
		return fmt.Errorf("seed: count categories: %w", err)
	}
	if n > 0 {
		log.Println("[seed] catalog already present, skipping")
		return nil
	}

	sedan := domain.Category{Code: "SEDAN_STANDARD", Name: "Standard Sedan", Description: "Comfortable sedans for everyday driving"}
	suv := domain.Category{Code: "SUV_STANDARD", Name: "Standard SUV", Description: "Spacious SUVs for families and trips"}
	lux := domain.Category{Code: "LUXURY_EXECUTIVE", Name: "Executive Luxury", Description: "Premium executive cars with full options"}
	for _, c := range []*domain.Category{&sedan, &suv, &lux} {
		if err := db.Create(c).Error; err != nil {
			return fmt.Errorf("seed: create category %s: %w", c.Code, err)
		}
	}

	plans := planGrid(sedan.ID, [9]int64{
		25000, 28000, 32000,
		23000, 26000, 30000,
		21000, 24000, 28000,
	})
	plans = append(plans, planGrid(suv.ID, [9]int64{
		35000, 40000, 45000,
		33000, 38000, 43000,
		31000, 36000, 41000,
	})...)
	plans = append(plans, planGrid(lux.ID, [9]int64{
		55000, 62000, 70000,
		52000, 59000, 67000,
		49000, 56000, 64000,
	})...)
	if err := db.Create(&plans).Error; err != nil {
		return fmt.Errorf("seed: create pricing plans: %w", err)
	}

	cars := []domain.Car{
		{Brand: "Toyota", Model: "Camry", ImageURL: "/images/cars/toyota-camry.jpg", CategoryID: sedan.ID},
		{Brand: "Honda", Model: "Accord", ImageURL: "/images/cars/honda-accord.jpg", CategoryID: sedan.ID},
		{Brand: "Mazda", Model: "3", ImageURL: "/images/cars/mazda-3.jpg", CategoryID: sedan.ID},
		{Brand: "Toyota", Model: "RAV4", ImageURL: "/images/cars/toyota-rav4.jpg", CategoryID: suv.ID},
		{Brand: "Honda", Model: "CR-V", ImageURL: "/images/cars/honda-crv.jpg", CategoryID: suv.ID},
		{Brand: "Hyundai", Model: "Tucson", ImageURL: "/images/cars/hyundai-tucson.jpg", CategoryID: suv.ID},
		{Brand: "BMW", Model: "5 Series", ImageURL: "/images/cars/bmw-5.jpg", CategoryID: lux.ID},
		{Brand: "Mercedes-Benz", Model: "E-Class", ImageURL: "/images/cars/mercedes-e.jpg", CategoryID: lux.ID},
		{Brand: "Audi", Model: "A6", ImageURL: "/images/cars/audi-a6.jpg", CategoryID: lux.ID},
	}
	for i := range cars {
		cars[i].Status = api.CarAvailable
	}
	if err := db.Create(&cars).Error; err != nil {
		return fmt.Errorf("seed: create cars: %w", err)
	}

	if err := seedAdmin(db); err != nil {
		return err
	}

	log.Printf("[seed] created %d categories, %d plans, %d cars", 3, len(plans), len(cars))
	return nil
}

// planGrid builds the nine standard plans for one category: durations 1, 3
// and 6 months crossed with 500, 1000 and 2000 km packages. Prices are given
// row by row in that order.
func planGrid(categoryID int64, prices [9]int64) []domain.PricingPlan {
	durations := []int{1, 3, 6}
	kms := []int{500, 1000, 2000}
	out := make([]domain.PricingPlan, 0, 9)
	for i, d := range durations {
		for j, km := range kms {
			out = append(out, domain.PricingPlan{
				CategoryID:     categoryID,
				DurationMonths: d,
				KmPackage:      km,
				PricePerMonth:  decimal.NewFromInt(prices[i*3+j]),
				IsActive:       true,
			})
		}
	}
	return out
}

func seedAdmin(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Email:        "admin@rental.local",
		PasswordHash: string(hash),
		FirstName:    "Admin",
		LastName:     "User",
		Role:         api.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}
	return nil
}
