package service

import (
	"context"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

// Store interfaces are satisfied by the gorm repositories; tests swap in
// in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id int64) (*domain.User, error)
}

type CatalogStore interface {
	Cars(ctx context.Context) ([]domain.Car, error)
	CarByID(ctx context.Context, id int64) (*domain.Car, error)
	CarsByCategory(ctx context.Context, categoryID int64) ([]domain.Car, error)
	CarsByBrand(ctx context.Context, brand string) ([]domain.Car, error)
	SetCarStatus(ctx context.Context, id int64, status api.CarStatus) error
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryByID(ctx context.Context, id int64) (*domain.Category, error)
}

type PricingStore interface {
	ActiveByCategory(ctx context.Context, categoryID int64) ([]domain.PricingPlan, error)
	Find(ctx context.Context, categoryID int64, durationMonths, kmPackage int) (*domain.PricingPlan, error)
}

type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	ByID(ctx context.Context, id int64) (*domain.Booking, error)
	ByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, to api.BookingStatus) (*domain.Booking, error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *domain.Payment) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	ByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error)
}
