// Package gateway is the typed HTTP client for the rental-api. Every response
// travels in the {success, message, data} envelope; callers get decoded data
// or an error carrying the server's message.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sarthakSixt/rental/pkg/api"
)

var (
	// ErrUnauthorized means the token is missing, expired or rejected. The UI
	// reacts by clearing the session and sending the user to login.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// APIError is a business rejection from the backend, e.g. "Car is not
// available for booking". The message is safe to show to the user.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	base  string
	http  *http.Client
	token string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: timeout},
	}
}

// WithToken returns a copy that sends the bearer token on every request. The
// receiver is not modified, so one Client serves all sessions.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("rental-api unreachable: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	var env api.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("rental-api returned %d with unexpected body", res.StatusCode)
	}
	if !env.Success {
		return &APIError{Status: res.StatusCode, Message: env.Message}
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	var out api.LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", api.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Signup(ctx context.Context, in api.SignupRequest) (*api.LoginResponse, error) {
	var out api.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Cars(ctx context.Context) ([]api.Car, error) {
	var out []api.Car
	err := c.do(ctx, http.MethodGet, "/cars", nil, &out)
	return out, err
}

func (c *Client) CarByID(ctx context.Context, id int64) (*api.Car, error) {
	var out api.Car
	if err := c.do(ctx, http.MethodGet, "/cars/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CarsByCategory(ctx context.Context, categoryID int64) ([]api.Car, error) {
	var out []api.Car
	err := c.do(ctx, http.MethodGet, "/cars/category/"+strconv.FormatInt(categoryID, 10), nil, &out)
	return out, err
}

func (c *Client) CarsByBrand(ctx context.Context, brand string) ([]api.Car, error) {
	var out []api.Car
	err := c.do(ctx, http.MethodGet, "/cars/brand/"+url.PathEscape(brand), nil, &out)
	return out, err
}

func (c *Client) Categories(ctx context.Context) ([]api.Category, error) {
	var out []api.Category
	err := c.do(ctx, http.MethodGet, "/categories", nil, &out)
	return out, err
}

func (c *Client) CategoryByID(ctx context.Context, id int64) (*api.Category, error) {
	var out api.Category
	if err := c.do(ctx, http.MethodGet, "/categories/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PricingPlans(ctx context.Context, categoryID int64) ([]api.PricingPlan, error) {
	var out []api.PricingPlan
	err := c.do(ctx, http.MethodGet, "/pricing/category/"+strconv.FormatInt(categoryID, 10), nil, &out)
	return out, err
}

func (c *Client) CalculatePrice(ctx context.Context, categoryID int64, durationMonths, kmPackage int) (*api.PriceCalculation, error) {
	q := url.Values{}
	q.Set("categoryId", strconv.FormatInt(categoryID, 10))
	q.Set("durationMonths", strconv.Itoa(durationMonths))
	q.Set("kmPackage", strconv.Itoa(kmPackage))
	var out api.PriceCalculation
	if err := c.do(ctx, http.MethodGet, "/pricing/calculate?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, in api.BookingRequest) (*api.Booking, error) {
	var out api.Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserBookings(ctx context.Context, userID int64) ([]api.Booking, error) {
	var out []api.Booking
	err := c.do(ctx, http.MethodGet, "/bookings/user/"+strconv.FormatInt(userID, 10), nil, &out)
	return out, err
}

func (c *Client) BookingByID(ctx context.Context, id int64) (*api.Booking, error) {
	var out api.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) (*api.Booking, error) {
	var out api.Booking
	if err := c.do(ctx, http.MethodPut, "/bookings/"+strconv.FormatInt(id, 10)+"/cancel", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProcessPayment(ctx context.Context, in api.PaymentRequest) (*api.Payment, error) {
	var out api.Payment
	if err := c.do(ctx, http.MethodPost, "/payments/process", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PaymentByBooking(ctx context.Context, bookingID int64) (*api.Payment, error) {
	var out api.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/booking/"+strconv.FormatInt(bookingID, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
