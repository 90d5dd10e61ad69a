package service

import (
	"context"
	"errors"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

var errNotFound = errors.New("record not found")

type memUsers struct {
	seq   int64
	users map[int64]*domain.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[int64]*domain.User{}} }

func (m *memUsers) Create(_ context.Context, u *domain.User) error {
	m.seq++
	u.ID = m.seq
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) ByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (m *memUsers) ByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

type memCatalog struct {
	cars       map[int64]*domain.Car
	categories map[int64]*domain.Category
}

func newMemCatalog() *memCatalog {
	return &memCatalog{cars: map[int64]*domain.Car{}, categories: map[int64]*domain.Category{}}
}

func (m *memCatalog) Cars(_ context.Context) ([]domain.Car, error) {
	var out []domain.Car
	for _, c := range m.cars {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCatalog) CarByID(_ context.Context, id int64) (*domain.Car, error) {
	c, ok := m.cars[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCatalog) CarsByCategory(_ context.Context, categoryID int64) ([]domain.Car, error) {
	var out []domain.Car
	for _, c := range m.cars {
		if c.CategoryID == categoryID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCatalog) CarsByBrand(_ context.Context, brand string) ([]domain.Car, error) {
	var out []domain.Car
	for _, c := range m.cars {
		if c.Brand == brand {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCatalog) SetCarStatus(_ context.Context, id int64, status api.CarStatus) error {
	c, ok := m.cars[id]
	if !ok {
		return errNotFound
	}
	c.Status = status
	return nil
}

func (m *memCatalog) Categories(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCatalog) CategoryByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

type memPlans struct {
	plans []*domain.PricingPlan
}

func (m *memPlans) ActiveByCategory(_ context.Context, categoryID int64) ([]domain.PricingPlan, error) {
	var out []domain.PricingPlan
	for _, p := range m.plans {
		if p.CategoryID == categoryID && p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPlans) Find(_ context.Context, categoryID int64, durationMonths, kmPackage int) (*domain.PricingPlan, error) {
	for _, p := range m.plans {
		if p.CategoryID == categoryID && p.DurationMonths == durationMonths &&
			p.KmPackage == kmPackage && p.IsActive {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errNotFound
}

type memBookings struct {
	seq      int64
	bookings map[int64]*domain.Booking
}

func newMemBookings() *memBookings { return &memBookings{bookings: map[int64]*domain.Booking{}} }

func (m *memBookings) Create(_ context.Context, b *domain.Booking) error {
	m.seq++
	b.ID = m.seq
	cp := *b
	m.bookings[b.ID] = &cp
	return nil
}

func (m *memBookings) ByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) ByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id int64, to api.BookingStatus) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	b.Status = to
	cp := *b
	return &cp, nil
}

type memPayments struct {
	seq      int64
	payments map[int64]*domain.Payment
}

func newMemPayments() *memPayments { return &memPayments{payments: map[int64]*domain.Payment{}} }

func (m *memPayments) Create(_ context.Context, p *domain.Payment) error {
	m.seq++
	p.ID = m.seq
	cp := *p
	m.payments[p.ID] = &cp
	return nil
}

func (m *memPayments) ExistsForBooking(_ context.Context, bookingID int64) (bool, error) {
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPayments) ByBooking(_ context.Context, bookingID int64) (*domain.Payment, error) {
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errNotFound
}
