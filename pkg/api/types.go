// Package api holds the wire contract shared by the rental-api service and
// the web client: the response envelope and the JSON shapes of every entity
// that crosses the HTTP boundary.
package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as JSON numbers ({"totalAmount": 15000}), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole validates a role string at the trust boundary. Unknown values are
// rejected rather than cast.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarRented      CarStatus = "RENTED"
	CarMaintenance CarStatus = "MAINTENANCE"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
	PaymentPending PaymentStatus = "PENDING"
)

// Date marshals as "2006-01-02"; booking start/end dates are calendar dates.
type Date struct{ time.Time }

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string { return d.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid date %s", b)
	}
	t, err := time.Parse(dateLayout, string(b[1:len(b)-1]))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        Role   `json:"role"`
}

func (u User) FullName() string { return u.FirstName + " " + u.LastName }

type Category struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Car struct {
	ID       int64     `json:"id"`
	Brand    string    `json:"brand"`
	Model    string    `json:"model"`
	ImageURL string    `json:"imageUrl,omitempty"`
	Status   CarStatus `json:"status"`
	Category Category  `json:"category"`
}

type PricingPlan struct {
	ID             int64           `json:"id"`
	DurationMonths int             `json:"durationMonths"`
	KmPackage      int             `json:"kmPackage"`
	PricePerMonth  decimal.Decimal `json:"pricePerMonth"`
	IsActive       bool            `json:"isActive"`
}

type PriceCalculation struct {
	CategoryID     int64           `json:"categoryId"`
	CategoryName   string          `json:"categoryName"`
	DurationMonths int             `json:"durationMonths"`
	KmPackage      int             `json:"kmPackage"`
	PricePerMonth  decimal.Decimal `json:"pricePerMonth"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

type Booking struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	CarID          int64           `json:"carId"`
	DurationMonths int             `json:"durationMonths"`
	KmPackage      int             `json:"kmPackage"`
	PricePerMonth  decimal.Decimal `json:"pricePerMonth"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	StartDate      Date            `json:"startDate"`
	EndDate        Date            `json:"endDate"`
	Status         BookingStatus   `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type Payment struct {
	ID            int64           `json:"id"`
	BookingID     int64           `json:"bookingId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status"`
	TransactionID string          `json:"transactionId,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type BookingRequest struct {
	UserID         int64 `json:"userId"`
	CarID          int64 `json:"carId"`
	CategoryID     int64 `json:"categoryId"`
	DurationMonths int   `json:"durationMonths"`
	KmPackage      int   `json:"kmPackage"`
	StartDate      Date  `json:"startDate"`
}

type PaymentRequest struct {
	BookingID   int64 `json:"bookingId"`
	MockSuccess bool  `json:"mockSuccess"`
}
