package ui

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/web/internal/gateway"
)

// safeNext keeps redirects on-site; anything absolute or schemeless-external
// falls back to the dashboard.
func safeNext(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "/dashboard"
	}
	return raw
}

func (s *Server) loginPage(c *gin.Context) {
	if currentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
		return
	}
	s.render(c, http.StatusOK, "login", gin.H{"Next": c.Query("next"), "Email": ""})
}

func (s *Server) login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	next := c.PostForm("next")
	if email == "" || password == "" {
		s.render(c, http.StatusBadRequest, "login", gin.H{
			"Next": next, "Error": "Email and password are required", "Email": email,
		})
		return
	}
	lr, err := s.gw.Login(c, email, password)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) || errors.Is(err, gateway.ErrUnauthorized) {
			s.render(c, http.StatusUnauthorized, "login", gin.H{
				"Next": next, "Error": "Invalid email or password", "Email": email,
			})
			return
		}
		s.fail(c, err)
		return
	}
	if err := s.sessions.Establish(c, lr); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(next))
}

func (s *Server) signupPage(c *gin.Context) {
	if currentUser(c) != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	s.render(c, http.StatusOK, "signup", gin.H{"Next": c.Query("next")})
}

func (s *Server) signup(c *gin.Context) {
	in := api.SignupRequest{
		Email:       strings.TrimSpace(c.PostForm("email")),
		Password:    c.PostForm("password"),
		FirstName:   strings.TrimSpace(c.PostForm("firstName")),
		LastName:    strings.TrimSpace(c.PostForm("lastName")),
		PhoneNumber: strings.TrimSpace(c.PostForm("phoneNumber")),
	}
	next := c.PostForm("next")
	if in.Email == "" || in.Password == "" || in.FirstName == "" {
		s.render(c, http.StatusBadRequest, "signup", gin.H{
			"Next": next, "Error": "Email, password and first name are required", "Form": in,
		})
		return
	}
	lr, err := s.gw.Signup(c, in)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			s.render(c, http.StatusBadRequest, "signup", gin.H{
				"Next": next, "Error": apiErr.Message, "Form": in,
			})
			return
		}
		s.fail(c, err)
		return
	}
	if err := s.sessions.Establish(c, lr); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, safeNext(next))
}

func (s *Server) logout(c *gin.Context) {
	s.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/")
}
