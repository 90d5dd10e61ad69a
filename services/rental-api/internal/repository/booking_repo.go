package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type BookingRepo struct{ db *gorm.DB }

func NewBookingRepo(db *gorm.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{})
}

func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepo) ByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepo) ByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *BookingRepo) UpdateStatus(ctx context.Context, id int64, to api.BookingStatus) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).Begin()
	if err := tx.First(&b, "id = ?", id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	b.Status = to
	if err := tx.Save(&b).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	return &b, tx.Commit().Error
}
