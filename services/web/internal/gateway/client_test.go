package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sarthakSixt/rental/pkg/api"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 2*time.Second), srv
}

func TestBearerTokenForwarded(t *testing.T) {
	var got string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	})
	defer srv.Close()

	if _, err := c.WithToken("tok-123").Cars(context.Background()); err != nil {
		t.Fatalf("Cars: %v", err)
	}
	if got != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", got)
	}
}

func TestWithTokenDoesNotMutateBase(t *testing.T) {
	var got string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"message":"ok","data":[]}`))
	})
	defer srv.Close()

	_ = c.WithToken("tok-123")
	if _, err := c.Cars(context.Background()); err != nil {
		t.Fatalf("Cars: %v", err)
	}
	if got != "" {
		t.Errorf("base client sent Authorization = %q", got)
	}
}

func TestEnvelopeUnwrapped(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"Car retrieved successfully",
			"data":{"id":5,"brand":"Toyota","model":"Camry","status":"AVAILABLE",
			"category":{"id":1,"code":"SEDAN_STANDARD","name":"Standard Sedan"}}}`))
	})
	defer srv.Close()

	car, err := c.CarByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("CarByID: %v", err)
	}
	if car.ID != 5 || car.Brand != "Toyota" || car.Category.Code != "SEDAN_STANDARD" {
		t.Fatalf("car = %+v", car)
	}
}

func TestUnauthorizedSentinel(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Missing or invalid token","data":null}`))
	})
	defer srv.Close()

	_, err := c.UserBookings(context.Background(), 7)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestForbiddenSentinel(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":false,"message":"Insufficient role","data":null}`))
	})
	defer srv.Close()

	_, err := c.UserBookings(context.Background(), 7)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestBusinessErrorCarriesServerMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Car is not available for booking","data":null}`))
	})
	defer srv.Close()

	_, err := c.CreateBooking(context.Background(), api.BookingRequest{UserID: 1, CarID: 2})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T %v, want *APIError", err, err)
	}
	if apiErr.Message != "Car is not available for booking" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.Status)
	}
}

func TestFailedEnvelopeOn200(t *testing.T) {
	// Some rejections come back with a 200 but success=false; the envelope,
	// not the status code, is authoritative.
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"No pricing plan found for category: 9, duration: 2, km: 700","data":null}`))
	})
	defer srv.Close()

	_, err := c.CalculatePrice(context.Background(), 9, 2, 700)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T %v, want *APIError", err, err)
	}
}

func TestNonJSONBodyIsGenericError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})
	defer srv.Close()

	_, err := c.Cars(context.Background())
	if err == nil {
		t.Fatal("want error")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("non-envelope body must not become APIError, got %v", apiErr)
	}
}

func TestProcessPaymentFailedStatusStillDecodes(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"Payment processed successfully",
			"data":{"id":3,"bookingId":42,"amount":15000,"status":"FAILED","transactionId":"Failed-abc"}}`))
	})
	defer srv.Close()

	p, err := c.ProcessPayment(context.Background(), api.PaymentRequest{BookingID: 42, MockSuccess: false})
	if err != nil {
		t.Fatalf("ProcessPayment: %v", err)
	}
	if p.Status != api.PaymentFailed {
		t.Errorf("status = %s, want FAILED", p.Status)
	}
}
