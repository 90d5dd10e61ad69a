package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
)

type Handlers struct {
	Auth     *AuthHandler
	Car      *CarHandler
	Category *CategoryHandler
	Pricing  *PricingHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
}

// NewRouter mounts everything under /api. Catalog and pricing are public;
// bookings and payments require a bearer token.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	root := r.Group("/api")

	root.POST("/auth/signup", h.Auth.Signup)
	root.POST("/auth/login", h.Auth.Login)

	root.GET("/cars", h.Car.List)
	root.GET("/cars/:id", h.Car.Get)
	root.GET("/cars/category/:categoryId", h.Car.ByCategory)
	root.GET("/cars/brand/:brand", h.Car.ByBrand)

	root.GET("/categories", h.Category.List)
	root.GET("/categories/:id", h.Category.Get)

	root.GET("/pricing/category/:categoryId", h.Pricing.Plans)
	root.GET("/pricing/calculate", h.Pricing.Calculate)

	secured := root.Group("")
	secured.Use(JWTAuth())
	{
		secured.POST("/bookings", h.Booking.Create)
		secured.GET("/bookings/user/:userId", h.Booking.ByUser)
		secured.GET("/bookings/:id", h.Booking.Get)
		secured.PUT("/bookings/:id/cancel", h.Booking.Cancel)

		secured.POST("/payments/process", h.Payment.Process)
		secured.GET("/payments/booking/:bookingId", h.Payment.ByBooking)

		admin := secured.Group("", RequireRole(string(api.RoleAdmin)))
		admin.PUT("/bookings/:id/complete", h.Booking.Complete)
	}

	return r
}
