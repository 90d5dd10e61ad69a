// Package ui is the server-rendered booking client: catalog browsing, the
// configure/review/confirmation flow and the booking dashboard, all backed by
// the rental-api through the gateway client.
package ui

import (
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/services/web/internal/gateway"
	"github.com/sarthakSixt/rental/services/web/internal/session"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	ctxToken = "session.token"
	ctxUser  = "session.user"
)

type Server struct {
	gw       *gateway.Client
	sessions *session.Manager
}

func New(gw *gateway.Client, sessions *session.Manager) *Server {
	return &Server{gw: gw, sessions: sessions}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	r.Use(s.loadSession)

	r.GET("/", s.home)
	r.GET("/cars", s.carList)
	r.GET("/cars/:id", s.carDetail)

	r.GET("/login", s.loginPage)
	r.POST("/login", s.login)
	r.GET("/signup", s.signupPage)
	r.POST("/signup", s.signup)
	r.POST("/logout", s.logout)

	guarded := r.Group("")
	guarded.Use(s.requireLogin)
	{
		guarded.GET("/configure", s.configurePage)
		guarded.GET("/configure/price", s.configurePrice)
		guarded.GET("/review", s.reviewPage)
		guarded.POST("/review/confirm", s.confirm)
		guarded.GET("/confirmation", s.confirmationPage)
		guarded.GET("/dashboard", s.dashboard)
		guarded.POST("/bookings/:id/cancel", s.cancelBooking)
	}

	return r
}

// loadSession makes the session available to every page; it never blocks.
func (s *Server) loadSession(c *gin.Context) {
	if token, user, ok := s.sessions.Current(c); ok {
		c.Set(ctxToken, token)
		c.Set(ctxUser, user)
	}
	c.Next()
}

// requireLogin bounces anonymous visitors to the login page and brings them
// back afterwards via ?next=.
func (s *Server) requireLogin(c *gin.Context) {
	if _, ok := c.Get(ctxUser); !ok {
		next := c.Request.URL.RequestURI()
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(next))
		c.Abort()
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) *session.User {
	if v, ok := c.Get(ctxUser); ok {
		return v.(*session.User)
	}
	return nil
}

// api returns a gateway client authenticated as the current session, or the
// anonymous client when there is none.
func (s *Server) api(c *gin.Context) *gateway.Client {
	if v, ok := c.Get(ctxToken); ok {
		return s.gw.WithToken(v.(string))
	}
	return s.gw
}

// fail renders a backend error. A 401 means the token went stale: the
// session is cleared and the user starts over at login.
func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, gateway.ErrUnauthorized) {
		s.sessions.Clear(c)
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
		return
	}
	status := http.StatusBadGateway
	msg := "The booking service is unavailable right now. Please try again."
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		status = http.StatusBadRequest
		msg = apiErr.Message
	} else if errors.Is(err, gateway.ErrForbidden) {
		status = http.StatusForbidden
		msg = "You are not allowed to do that."
	} else {
		log.Printf("[ui] gateway: %v", err)
	}
	s.render(c, status, "error", gin.H{"Message": msg})
}

func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = currentUser(c)
	c.HTML(status, name, data)
}
