package ui

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/services/web/internal/gateway"
	"github.com/sarthakSixt/rental/services/web/internal/session"
)

// fakeBackend is a scripted rental-api: happy-path catalog and pricing, with
// switches for the failure scenarios.
type fakeBackend struct {
	rejectBooking bool
	unauthorized  bool
	paymentStatus string
	paymentCalls  int
	bookingCalls  int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	ok := func(w http.ResponseWriter, data string) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok","data":` + data + `}`))
	}
	car := `{"id":5,"brand":"Toyota","model":"Camry","status":"AVAILABLE",
		"category":{"id":1,"code":"SEDAN_STANDARD","name":"Standard Sedan"}}`
	calc := `{"categoryId":1,"categoryName":"Standard Sedan","durationMonths":3,
		"kmPackage":1000,"pricePerMonth":5000,"totalAmount":15000}`

	mux.HandleFunc("/cars/5", func(w http.ResponseWriter, r *http.Request) { ok(w, car) })
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) { ok(w, `[]`) })
	mux.HandleFunc("/pricing/calculate", func(w http.ResponseWriter, r *http.Request) { ok(w, calc) })
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		ok(w, `{"token":"tok-abc","tokenType":"Bearer","userId":7,"email":"jane@example.com",
			"firstName":"Jane","lastName":"Doe","role":"CUSTOMER"}`)
	})
	mux.HandleFunc("/bookings/user/7", func(w http.ResponseWriter, r *http.Request) {
		if f.unauthorized {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"Token expired","data":null}`))
			return
		}
		ok(w, `[]`)
	})
	mux.HandleFunc("/bookings", func(w http.ResponseWriter, r *http.Request) {
		f.bookingCalls++
		if f.rejectBooking {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"success":false,"message":"Car is not available for booking","data":null}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		ok(w, `{"id":42,"userId":7,"carId":5,"durationMonths":3,"kmPackage":1000,
			"pricePerMonth":5000,"totalAmount":15000,"startDate":"2099-01-01",
			"endDate":"2099-04-01","status":"PENDING"}`)
	})
	mux.HandleFunc("/bookings/42", func(w http.ResponseWriter, r *http.Request) {
		ok(w, `{"id":42,"userId":7,"carId":5,"durationMonths":3,"kmPackage":1000,
			"pricePerMonth":5000,"totalAmount":15000,"startDate":"2099-01-01",
			"endDate":"2099-04-01","status":"PENDING"}`)
	})
	mux.HandleFunc("/payments/booking/42", func(w http.ResponseWriter, r *http.Request) {
		status := f.paymentStatus
		if status == "" {
			status = "SUCCESS"
		}
		ok(w, `{"id":1,"bookingId":42,"amount":15000,"status":"`+status+`","transactionId":"Txn-x"}`)
	})
	mux.HandleFunc("/payments/process", func(w http.ResponseWriter, r *http.Request) {
		f.paymentCalls++
		w.WriteHeader(http.StatusCreated)
		ok(w, `{"id":1,"bookingId":42,"amount":15000,"status":"SUCCESS","transactionId":"Txn-x"}`)
	})
	return mux
}

func newTestUI(t *testing.T, f *fakeBackend) (*gin.Engine, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(f.handler())
	gw := gateway.New(srv.URL, 2*time.Second)
	return New(gw, session.NewManager(false)).Router(), srv
}

func sessionCookies() []*http.Cookie {
	user := base64.RawURLEncoding.EncodeToString([]byte(
		`{"id":7,"email":"jane@example.com","firstName":"Jane","lastName":"Doe","role":"CUSTOMER"}`))
	return []*http.Cookie{
		{Name: "authToken", Value: "tok-abc"},
		{Name: "user", Value: user},
	}
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestGuardRedirectsAnonymousVisitors(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{})
	defer srv.Close()

	w := get(r, "/configure?carId=5&categoryId=1", nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	loc := w.Header().Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") {
		t.Fatalf("Location = %q, want /login?next=...", loc)
	}
	if !strings.Contains(loc, url.QueryEscape("carId=5")) {
		t.Errorf("next must preserve the wizard state, got %q", loc)
	}
}

func TestLoginSetsCookiesAndFollowsNext(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{})
	defer srv.Close()

	form := url.Values{
		"email":    {"jane@example.com"},
		"password": {"secret"},
		"next":     {"/configure?carId=5&categoryId=1"},
	}
	w := postForm(r, "/login", form, nil)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/configure?carId=5&categoryId=1" {
		t.Errorf("Location = %q", loc)
	}
	names := map[string]bool{}
	for _, ck := range w.Result().Cookies() {
		names[ck.Name] = true
	}
	if !names["authToken"] || !names["user"] {
		t.Fatalf("cookies = %v, want authToken and user", names)
	}
}

func TestLoginRejectsOffSiteNext(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{})
	defer srv.Close()

	form := url.Values{
		"email":    {"jane@example.com"},
		"password": {"secret"},
		"next":     {"https://evil.example/phish"},
	}
	w := postForm(r, "/login", form, nil)
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("Location = %q, want /dashboard", loc)
	}
}

func TestBrokenWizardStateGoesBackToCatalog(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{})
	defer srv.Close()

	for _, path := range []string{
		"/review?carId=abc&categoryId=1",
		"/review",
		"/configure?carId=5&categoryId=1&startDate=2001-01-01",
	} {
		w := get(r, path, sessionCookies())
		if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/cars" {
			t.Errorf("%s: status=%d location=%q, want 303 /cars", path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestStaleTokenClearsSessionAndRedirects(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{unauthorized: true})
	defer srv.Close()

	w := get(r, "/dashboard", sessionCookies())
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "/login?next=") {
		t.Fatalf("Location = %q", w.Header().Get("Location"))
	}
	cleared := 0
	for _, ck := range w.Result().Cookies() {
		if (ck.Name == "authToken" || ck.Name == "user") && ck.MaxAge < 0 {
			cleared++
		}
	}
	if cleared != 2 {
		t.Errorf("cleared %d session cookies, want 2", cleared)
	}
}

func TestConfirmHappyPathRedirectsToConfirmation(t *testing.T) {
	f := &fakeBackend{}
	r, srv := newTestUI(t, f)
	defer srv.Close()

	form := url.Values{
		"carId": {"5"}, "categoryId": {"1"},
		"durationMonths": {"3"}, "kmPackage": {"1000"},
		"startDate": {"2099-01-01"}, "paymentOutcome": {"success"},
	}
	w := postForm(r, "/review/confirm", form, sessionCookies())
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/confirmation?bookingId=42" {
		t.Errorf("Location = %q", loc)
	}
	if f.bookingCalls != 1 || f.paymentCalls != 1 {
		t.Errorf("bookingCalls=%d paymentCalls=%d, want 1 and 1", f.bookingCalls, f.paymentCalls)
	}
}

func TestRejectedBookingStaysOnReviewWithoutPayment(t *testing.T) {
	f := &fakeBackend{rejectBooking: true}
	r, srv := newTestUI(t, f)
	defer srv.Close()

	form := url.Values{
		"carId": {"5"}, "categoryId": {"1"},
		"durationMonths": {"3"}, "kmPackage": {"1000"},
		"startDate": {"2099-01-01"}, "paymentOutcome": {"success"},
	}
	w := postForm(r, "/review/confirm", form, sessionCookies())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Car is not available for booking") {
		t.Error("review page must show the backend's rejection message")
	}
	if f.paymentCalls != 0 {
		t.Errorf("paymentCalls = %d, payment must not run after a rejected booking", f.paymentCalls)
	}
}

func TestConfirmationExitsFollowPaymentOutcome(t *testing.T) {
	t.Run("failed payment hides the dashboard exit", func(t *testing.T) {
		r, srv := newTestUI(t, &fakeBackend{paymentStatus: "FAILED"})
		defer srv.Close()

		w := get(r, "/confirmation?bookingId=42", sessionCookies())
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, "Payment failed") {
			t.Error("failure view missing")
		}
		if !strings.Contains(body, "Browse more cars") {
			t.Error("catalog exit missing")
		}
		if strings.Contains(body, "Go to my bookings") {
			t.Error("failed confirmation must not offer the dashboard exit")
		}
	})

	t.Run("successful payment offers both exits", func(t *testing.T) {
		r, srv := newTestUI(t, &fakeBackend{})
		defer srv.Close()

		w := get(r, "/confirmation?bookingId=42", sessionCookies())
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		body := w.Body.String()
		if !strings.Contains(body, "Booking confirmed") {
			t.Error("success view missing")
		}
		if !strings.Contains(body, "Browse more cars") || !strings.Contains(body, "Go to my bookings") {
			t.Error("success view must offer both the catalog and dashboard exits")
		}
	})
}

func TestConfigurePriceEndpoint(t *testing.T) {
	r, srv := newTestUI(t, &fakeBackend{})
	defer srv.Close()

	w := get(r, "/configure/price?carId=5&categoryId=1&durationMonths=3&kmPackage=1000", sessionCookies())
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"totalAmount":15000`) {
		t.Errorf("body = %s", w.Body.String())
	}
}
