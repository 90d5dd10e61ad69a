package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/pkg/mq"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

var ErrCarUnavailable = errors.New("Car is not available for booking")

type BookingSvc struct {
	bookings BookingStore
	users    UserStore
	catalog  CatalogStore
	plans    PricingStore
	pub      *mq.Publisher
}

func NewBookingSvc(bookings BookingStore, users UserStore, catalog CatalogStore, plans PricingStore, pub *mq.Publisher) *BookingSvc {
	return &BookingSvc{bookings: bookings, users: users, catalog: catalog, plans: plans, pub: pub}
}

// Create validates user and car, snapshots the plan price into the booking,
// and takes the car off the market. Status starts at PENDING until a payment
// confirms it.
func (s *BookingSvc) Create(ctx context.Context, in api.BookingRequest) (*domain.Booking, error) {
	if _, err := s.users.ByID(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("User not found with ID: %d", in.UserID)
	}
	car, err := s.catalog.CarByID(ctx, in.CarID)
	if err != nil {
		return nil, fmt.Errorf("Car not found with ID: %d", in.CarID)
	}
	if car.Status != api.CarAvailable {
		return nil, ErrCarUnavailable
	}
	plan, err := s.plans.Find(ctx, in.CategoryID, in.DurationMonths, in.KmPackage)
	if err != nil {
		return nil, fmt.Errorf("No pricing plan found for category: %d, duration: %d, km: %d",
			in.CategoryID, in.DurationMonths, in.KmPackage)
	}

	start := in.StartDate.Time
	b := &domain.Booking{
		UserID:         in.UserID,
		CarID:          in.CarID,
		DurationMonths: in.DurationMonths,
		KmPackage:      in.KmPackage,
		PricePerMonth:  plan.PricePerMonth,
		TotalAmount:    plan.PricePerMonth.Mul(decimal.NewFromInt(int64(in.DurationMonths))),
		StartDate:      start,
		EndDate:        start.AddDate(0, in.DurationMonths, 0),
		Status:         api.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	if err := s.catalog.SetCarStatus(ctx, car.ID, api.CarRented); err != nil {
		log.Printf("[booking] mark car %d rented: %v", car.ID, err)
	}

	s.publish(ctx, "booking.created", map[string]any{
		"booking_id":   b.ID,
		"user_id":      b.UserID,
		"car_id":       b.CarID,
		"start_date":   b.StartDate.Format("2006-01-02"),
		"total_amount": b.TotalAmount,
	})
	return b, nil
}

func (s *BookingSvc) ByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("Booking not found with ID: %d", id)
	}
	return b, nil
}

func (s *BookingSvc) UserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ByUser(ctx, userID)
}

// Confirm is driven by a successful payment, never by the client directly.
func (s *BookingSvc) Confirm(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.UpdateStatus(ctx, id, api.BookingConfirmed)
	if err != nil {
		return nil, fmt.Errorf("Booking not found with ID: %d", id)
	}
	return b, nil
}

func (s *BookingSvc) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.UpdateStatus(ctx, id, api.BookingCancelled)
	if err != nil {
		return nil, fmt.Errorf("Booking not found with ID: %d", id)
	}
	if err := s.catalog.SetCarStatus(ctx, b.CarID, api.CarAvailable); err != nil {
		log.Printf("[booking] release car %d: %v", b.CarID, err)
	}
	s.publish(ctx, "booking.cancelled", map[string]any{"booking_id": b.ID, "user_id": b.UserID})
	return b, nil
}

// Complete ends a subscription and frees the car; used by admin tooling, not
// exposed to customers.
func (s *BookingSvc) Complete(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.UpdateStatus(ctx, id, api.BookingCompleted)
	if err != nil {
		return nil, fmt.Errorf("Booking not found with ID: %d", id)
	}
	if err := s.catalog.SetCarStatus(ctx, b.CarID, api.CarAvailable); err != nil {
		log.Printf("[booking] release car %d: %v", b.CarID, err)
	}
	return b, nil
}

func (s *BookingSvc) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		log.Printf("[booking] publish %s: %v", key, err)
	}
}
