package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentSvc
}

func NewPaymentHandler(svc *service.PaymentSvc) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// POST /api/payments/process
func (h *PaymentHandler) Process(c *gin.Context) {
	var in api.PaymentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	if in.BookingID <= 0 {
		c.JSON(http.StatusBadRequest, api.Err("Invalid bookingId"))
		return
	}
	p, err := h.svc.Process(c, in.BookingID, in.MockSuccess)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	// A FAILED payment is still a processed payment: the envelope succeeds and
	// the caller inspects data.status.
	c.JSON(http.StatusCreated, api.OK("Payment processed successfully", p.API()))
}

// GET /api/payments/booking/:bookingId
func (h *PaymentHandler) ByBooking(c *gin.Context) {
	id, ok := paramID(c, "bookingId")
	if !ok {
		return
	}
	p, err := h.svc.ByBooking(c, id)
	if err != nil {
		c.JSON(http.StatusNotFound, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Payment retrieved successfully", p.API()))
}
