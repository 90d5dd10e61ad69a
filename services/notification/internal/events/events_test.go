package events

import (
	"errors"
	"strings"
	"testing"
)

func TestDescribePaymentSucceeded(t *testing.T) {
	text, err := Describe(PaymentSucceeded,
		[]byte(`{"booking_id":42,"payment_id":1,"amount":15000,"transaction_id":"Txn-abc"}`))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	for _, want := range []string{"#42", "15000", "Txn-abc"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q missing %q", text, want)
		}
	}
}

func TestDescribeBookingCancelled(t *testing.T) {
	text, err := Describe(BookingCancelled, []byte(`{"booking_id":42,"user_id":7}`))
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if !strings.Contains(text, "#42") || !strings.Contains(text, "cancelled") {
		t.Errorf("text = %q", text)
	}
}

func TestDescribeUnknownKey(t *testing.T) {
	_, err := Describe("tire.rotated", []byte(`{}`))
	var unknown ErrUnknownKey
	if !errors.As(err, &unknown) || unknown.Key != "tire.rotated" {
		t.Fatalf("err = %v, want ErrUnknownKey", err)
	}
}

func TestDescribeBadPayload(t *testing.T) {
	if _, err := Describe(BookingCreated, []byte(`not json`)); err == nil {
		t.Fatal("want decode error")
	}
	var unknown ErrUnknownKey
	if _, err := Describe(BookingCreated, []byte(`not json`)); errors.As(err, &unknown) {
		t.Fatal("decode failure must not look like an unknown key")
	}
}
