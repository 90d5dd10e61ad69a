package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/web/internal/gateway"
	"github.com/sarthakSixt/rental/services/web/internal/wizard"
)

// parseSelection reads the wizard state from the query string and loads the
// car it refers to. A broken selection sends the user back to the catalog.
func (s *Server) parseSelection(c *gin.Context, q url.Values) (wizard.Selection, *api.Car, bool) {
	sel, err := wizard.ParseSelection(q, time.Now())
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/cars")
		c.Abort()
		return wizard.Selection{}, nil, false
	}
	car, err := s.api(c).CarByID(c, sel.CarID)
	if err != nil {
		s.fail(c, err)
		return wizard.Selection{}, nil, false
	}
	return sel, car, true
}

func (s *Server) configurePage(c *gin.Context) {
	sel, car, ok := s.parseSelection(c, c.Request.URL.Query())
	if !ok {
		return
	}
	calc, err := s.api(c).CalculatePrice(c, sel.CategoryID, sel.DurationMonths, sel.KmPackage)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "configure", gin.H{
		"Car":       car,
		"Selection": sel,
		"Price":     calc,
		"Durations": wizard.Durations,
		"Kms":       wizard.KmPackages,
		"MinDate":   api.NewDate(time.Now()).String(),
		"ReviewURL": "/review?" + sel.Query().Encode(),
	})
}

// configurePrice is the live-price endpoint behind the configure page. The
// page fires a request per control change and always displays the latest
// response it received.
func (s *Server) configurePrice(c *gin.Context) {
	sel, err := wizard.ParseSelection(c.Request.URL.Query(), time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	calc, err := s.api(c).CalculatePrice(c, sel.CategoryID, sel.DurationMonths, sel.KmPackage)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			s.sessions.Clear(c)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "pricing unavailable"})
		return
	}
	c.JSON(http.StatusOK, calc)
}

func (s *Server) reviewPage(c *gin.Context) {
	sel, car, ok := s.parseSelection(c, c.Request.URL.Query())
	if !ok {
		return
	}
	s.renderReview(c, http.StatusOK, sel, car, "")
}

// renderReview recomputes the price server-side; the review page never trusts
// a total carried through the URL.
func (s *Server) renderReview(c *gin.Context, status int, sel wizard.Selection, car *api.Car, errMsg string) {
	calc, err := s.api(c).CalculatePrice(c, sel.CategoryID, sel.DurationMonths, sel.KmPackage)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, status, "review", gin.H{
		"Car":          car,
		"Selection":    sel,
		"Price":        calc,
		"EndDate":      api.NewDate(sel.StartDate.AddDate(0, sel.DurationMonths, 0)).String(),
		"ConfigureURL": "/configure?" + sel.Query().Encode(),
		"Error":        errMsg,
	})
}

// confirm creates the booking and then processes the simulated payment. If
// the booking is rejected no payment is ever attempted; the user stays on the
// review page with the backend's message.
func (s *Server) confirm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.Redirect(http.StatusSeeOther, "/cars")
		return
	}
	sel, car, ok := s.parseSelection(c, c.Request.PostForm)
	if !ok {
		return
	}
	user := currentUser(c)
	gw := s.api(c)

	booking, err := gw.CreateBooking(c, api.BookingRequest{
		UserID:         user.ID,
		CarID:          sel.CarID,
		CategoryID:     sel.CategoryID,
		DurationMonths: sel.DurationMonths,
		KmPackage:      sel.KmPackage,
		StartDate:      sel.StartDate,
	})
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			s.renderReview(c, http.StatusBadRequest, sel, car, apiErr.Message)
			return
		}
		s.fail(c, err)
		return
	}

	mockSuccess := c.PostForm("paymentOutcome") != "fail"
	if _, err := gw.ProcessPayment(c, api.PaymentRequest{
		BookingID:   booking.ID,
		MockSuccess: mockSuccess,
	}); err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			s.renderReview(c, http.StatusBadRequest, sel, car, apiErr.Message)
			return
		}
		s.fail(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirmation?bookingId="+strconv.FormatInt(booking.ID, 10))
}

func (s *Server) confirmationPage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	gw := s.api(c)
	booking, err := gw.BookingByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if booking.UserID != currentUser(c).ID {
		s.render(c, http.StatusForbidden, "error", gin.H{"Message": "That booking belongs to another account"})
		return
	}
	car, err := gw.CarByID(c, booking.CarID)
	if err != nil {
		s.fail(c, err)
		return
	}
	// payment may be missing when the browser reloads mid-flow
	payment, err := gw.PaymentByBooking(c, id)
	if err != nil && !isNotFound(err) {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "confirmation", gin.H{
		"Booking": booking,
		"Car":     car,
		"Payment": payment,
		"Paid":    payment != nil && payment.Status == api.PaymentSuccess,
	})
}

func (s *Server) dashboard(c *gin.Context) {
	user := currentUser(c)
	bookings, err := s.api(c).UserBookings(c, user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	s.render(c, http.StatusOK, "dashboard", gin.H{"Bookings": bookings})
}

func (s *Server) cancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	gw := s.api(c)
	booking, err := gw.BookingByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	if booking.UserID != currentUser(c).ID {
		s.render(c, http.StatusForbidden, "error", gin.H{"Message": "That booking belongs to another account"})
		return
	}
	if _, err := gw.CancelBooking(c, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func isNotFound(err error) bool {
	var apiErr *gateway.APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
