package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/pkg/mq"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

type PaymentSvc struct {
	payments PaymentStore
	bookings *BookingSvc
	pub      *mq.Publisher
}

func NewPaymentSvc(payments PaymentStore, bookings *BookingSvc, pub *mq.Publisher) *PaymentSvc {
	return &PaymentSvc{payments: payments, bookings: bookings, pub: pub}
}

// Process records a mock payment for the booking. The mockSuccess flag decides
// the outcome; a successful payment confirms the booking in the same call.
// One payment per booking, ever.
func (s *PaymentSvc) Process(ctx context.Context, bookingID int64, mockSuccess bool) (*domain.Payment, error) {
	b, err := s.bookings.ByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	exists, err := s.payments.ExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("Payment already exists for booking ID: %d", bookingID)
	}

	p := &domain.Payment{BookingID: bookingID, Amount: b.TotalAmount}
	if mockSuccess {
		p.Status = api.PaymentSuccess
		p.TransactionID = "Txn-" + uuid.NewString()
	} else {
		p.Status = api.PaymentFailed
		p.TransactionID = "Failed-" + uuid.NewString()
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	if mockSuccess {
		if _, err := s.bookings.Confirm(ctx, bookingID); err != nil {
			log.Printf("[payment] confirm booking %d: %v", bookingID, err)
		}
		s.publish(ctx, "payment.succeeded", map[string]any{
			"booking_id":     bookingID,
			"payment_id":     p.ID,
			"amount":         p.Amount,
			"transaction_id": p.TransactionID,
		})
	} else {
		s.publish(ctx, "payment.failed", map[string]any{
			"booking_id": bookingID,
			"payment_id": p.ID,
		})
	}
	return p, nil
}

func (s *PaymentSvc) ByBooking(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	p, err := s.payments.ByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("Payment not found for booking ID: %d", bookingID)
	}
	return p, nil
}

func (s *PaymentSvc) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.PublishJSON(ctx, key, v); err != nil {
		log.Printf("[payment] publish %s: %v", key, err)
	}
}
