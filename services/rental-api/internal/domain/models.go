package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarthakSixt/rental/pkg/api"
)

type User struct {
	ID           int64  `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Role         api.Role
	CreatedAt    time.Time
}

func (u *User) API() api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}
}

type Category struct {
	ID          int64  `gorm:"primaryKey"`
	Code        string `gorm:"uniqueIndex;size:15"`
	Name        string `gorm:"size:50"`
	Description string `gorm:"size:500"`
	CreatedAt   time.Time
}

func (c *Category) API() api.Category {
	return api.Category{ID: c.ID, Code: c.Code, Name: c.Name, Description: c.Description}
}

type Car struct {
	ID         int64 `gorm:"primaryKey"`
	Brand      string
	Model      string
	ImageURL   string
	Status     api.CarStatus `gorm:"index"`
	CategoryID int64         `gorm:"index"`
	Category   Category
	CreatedAt  time.Time
}

func (c *Car) API() api.Car {
	return api.Car{
		ID:       c.ID,
		Brand:    c.Brand,
		Model:    c.Model,
		ImageURL: c.ImageURL,
		Status:   c.Status,
		Category: c.Category.API(),
	}
}

type PricingPlan struct {
	ID             int64 `gorm:"primaryKey"`
	CategoryID     int64 `gorm:"index"`
	Category       Category
	DurationMonths int
	KmPackage      int
	PricePerMonth  decimal.Decimal `gorm:"type:numeric(10,2)"`
	IsActive       bool            `gorm:"index"`
	CreatedAt      time.Time
}

func (p *PricingPlan) API() api.PricingPlan {
	return api.PricingPlan{
		ID:             p.ID,
		DurationMonths: p.DurationMonths,
		KmPackage:      p.KmPackage,
		PricePerMonth:  p.PricePerMonth,
		IsActive:       p.IsActive,
	}
}

// Booking snapshots the plan price at creation time; later plan changes never
// touch existing bookings.
type Booking struct {
	ID             int64 `gorm:"primaryKey"`
	UserID         int64 `gorm:"index"`
	CarID          int64 `gorm:"index"`
	DurationMonths int
	KmPackage      int
	PricePerMonth  decimal.Decimal `gorm:"type:numeric(10,2)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	StartDate      time.Time       `gorm:"type:date"`
	EndDate        time.Time       `gorm:"type:date"`
	Status         api.BookingStatus `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (b *Booking) API() api.Booking {
	return api.Booking{
		ID:             b.ID,
		UserID:         b.UserID,
		CarID:          b.CarID,
		DurationMonths: b.DurationMonths,
		KmPackage:      b.KmPackage,
		PricePerMonth:  b.PricePerMonth,
		TotalAmount:    b.TotalAmount,
		StartDate:      api.NewDate(b.StartDate),
		EndDate:        api.NewDate(b.EndDate),
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

type Payment struct {
	ID            int64           `gorm:"primaryKey"`
	BookingID     int64           `gorm:"uniqueIndex"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status        api.PaymentStatus
	TransactionID string
	CreatedAt     time.Time
}

func (p *Payment) API() api.Payment {
	return api.Payment{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}
