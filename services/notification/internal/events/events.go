// Package events names the booking and payment lifecycle events the
// rental-api publishes and turns them into human-readable notifications.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
	PaymentSucceeded = "payment.succeeded"
	PaymentFailed    = "payment.failed"
)

type bookingCreated struct {
	BookingID   int64           `json:"booking_id"`
	UserID      int64           `json:"user_id"`
	CarID       int64           `json:"car_id"`
	StartDate   string          `json:"start_date"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type bookingCancelled struct {
	BookingID int64 `json:"booking_id"`
	UserID    int64 `json:"user_id"`
}

type paymentSucceeded struct {
	BookingID     int64           `json:"booking_id"`
	PaymentID     int64           `json:"payment_id"`
	Amount        decimal.Decimal `json:"amount"`
	TransactionID string          `json:"transaction_id"`
}

type paymentFailed struct {
	BookingID int64 `json:"booking_id"`
	PaymentID int64 `json:"payment_id"`
}

// ErrUnknownKey marks routing keys this worker does not handle; callers ack
// and drop them.
type ErrUnknownKey struct{ Key string }

func (e ErrUnknownKey) Error() string { return "unknown routing key " + e.Key }

// Describe renders an event into the message that gets sent out.
func Describe(key string, body []byte) (string, error) {
	switch key {
	case BookingCreated:
		var e bookingCreated
		if err := json.Unmarshal(body, &e); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}
		return fmt.Sprintf("New booking #%d: user %d booked car %d from %s, total %s THB",
			e.BookingID, e.UserID, e.CarID, e.StartDate, e.TotalAmount), nil
	case BookingCancelled:
		var e bookingCancelled
		if err := json.Unmarshal(body, &e); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}
		return fmt.Sprintf("Booking #%d cancelled by user %d", e.BookingID, e.UserID), nil
	case PaymentSucceeded:
		var e paymentSucceeded
		if err := json.Unmarshal(body, &e); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}
		return fmt.Sprintf("Payment received for booking #%d: %s THB (%s)",
			e.BookingID, e.Amount, e.TransactionID), nil
	case PaymentFailed:
		var e paymentFailed
		if err := json.Unmarshal(body, &e); err != nil {
			return "", fmt.Errorf("decode %s: %w", key, err)
		}
		return fmt.Sprintf("Payment FAILED for booking #%d", e.BookingID), nil
	default:
		return "", ErrUnknownKey{Key: key}
	}
}
