package config

import (
	"github.com/kelseyhightower/envconfig"
)

// API is the rental-api service configuration.
type API struct {
	// DB
	PGRentalDSN string `envconfig:"PG_RENTAL_DSN" required:"true"`
	// JWT
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	JWTExpireMin int    `envconfig:"JWT_EXPIRE_MIN" default:"1440"`
	// Messaging (optional; events are skipped when unset)
	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"rental.bookings"`
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"rental.payments"`
	// Tracing
	TracingEnabled bool `envconfig:"TRACING_ENABLED" default:"false"`
	// Network
	APIHTTPAddr string `envconfig:"API_HTTP_ADDR" default:":8080"`
	// Seed sample data into an empty database on startup
	SeedOnStart bool `envconfig:"SEED_ON_START" default:"true"`
}

// Web is the booking web client configuration.
type Web struct {
	APIBaseURL    string `envconfig:"API_BASE_URL" default:"http://localhost:8080/api"`
	WebHTTPAddr   string `envconfig:"WEB_HTTP_ADDR" default:":3000"`
	RequestTOMsec int    `envconfig:"REQUEST_TIMEOUT_MS" default:"10000"`
	SecureCookies bool   `envconfig:"SECURE_COOKIES" default:"false"`
}

// Notify is the notification worker configuration.
type Notify struct {
	RabbitURL       string `envconfig:"RABBIT_URL" required:"true"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"rental.bookings"`
	PaymentExchange string `envconfig:"PAYMENT_EXCHANGE" default:"rental.payments"`
	Queue           string `envconfig:"NOTIFY_QUEUE" default:"rental.notifications"`
	TelegramToken   string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID  int64  `envconfig:"TELEGRAM_CHAT_ID"`
}

func LoadAPI() (API, error) {
	var c API
	err := envconfig.Process("", &c)
	return c, err
}

func LoadWeb() (Web, error) {
	var c Web
	err := envconfig.Process("", &c)
	return c, err
}

func LoadNotify() (Notify, error) {
	var c Notify
	err := envconfig.Process("", &c)
	return c, err
}
