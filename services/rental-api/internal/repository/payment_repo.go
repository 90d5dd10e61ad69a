package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

func (r *PaymentRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Payment{})
}

func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Payment{}).
		Where("booking_id = ?", bookingID).Count(&n).Error
	return n > 0, err
}

func (r *PaymentRepo) ByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var p domain.Payment
	if err := r.db.WithContext(ctx).First(&p, "booking_id = ?", bookingID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
