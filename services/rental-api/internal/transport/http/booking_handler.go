package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var in api.BookingRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	b, err := h.svc.Create(c, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, api.OK("Booking created successfully", b.API()))
}

// GET /api/bookings/user/:userId
func (h *BookingHandler) ByUser(c *gin.Context) {
	id, ok := paramID(c, "userId")
	if !ok {
		return
	}
	bookings, err := h.svc.UserBookings(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.Err("Failed to load bookings"))
		return
	}
	out := make([]api.Booking, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].API())
	}
	c.JSON(http.StatusOK, api.OK("Bookings retrieved successfully", out))
}

// GET /api/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.ByID(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Booking retrieved successfully", b.API()))
}

// PUT /api/bookings/:id/complete (admin only)
func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.Complete(c, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Booking completed successfully", b.API()))
}

// PUT /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.Cancel(c, id)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Booking cancelled successfully", b.API()))
}
