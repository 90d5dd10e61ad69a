// Package session keeps the login state in two cookies: the raw bearer token
// and a base64 JSON snapshot of the user. Cookies survive browser restarts,
// so a session lasts until logout, expiry or a 401 from the backend.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
)

const (
	tokenCookie = "authToken"
	userCookie  = "user"

	// matches the backend's default token TTL
	maxAgeSeconds = 24 * 60 * 60
)

// User is the cookie snapshot of the logged-in account. It is display data
// only; the backend re-authorizes every request from the token.
type User struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      api.Role `json:"role"`
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Manager struct {
	secure bool
}

func NewManager(secure bool) *Manager {
	return &Manager{secure: secure}
}

// Establish stores the login result. Called after both login and signup.
// A role outside the known set is rejected before any cookie is written;
// a half-trusted session is worse than a failed login.
func (m *Manager) Establish(c *gin.Context, lr *api.LoginResponse) error {
	role, err := api.ParseRole(lr.Role)
	if err != nil {
		return err
	}
	u := User{
		ID:        lr.UserID,
		Email:     lr.Email,
		FirstName: lr.FirstName,
		LastName:  lr.LastName,
		Role:      role,
	}
	blob, err := json.Marshal(u)
	if err != nil {
		return err
	}
	m.set(c, tokenCookie, lr.Token)
	m.set(c, userCookie, base64.RawURLEncoding.EncodeToString(blob))
	return nil
}

func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(tokenCookie, "", -1, "/", "", m.secure, true)
	c.SetCookie(userCookie, "", -1, "/", "", m.secure, false)
}

// Current returns the session, or ok=false when there is none. A token
// without a readable user snapshot counts as logged out: the UI needs the
// identity to render anything, so a half-session is useless.
func (m *Manager) Current(c *gin.Context) (token string, user *User, ok bool) {
	token, err := c.Cookie(tokenCookie)
	if err != nil || token == "" {
		return "", nil, false
	}
	raw, err := c.Cookie(userCookie)
	if err != nil || raw == "" {
		return "", nil, false
	}
	blob, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return "", nil, false
	}
	var u User
	if err := json.Unmarshal(blob, &u); err != nil || u.ID <= 0 {
		return "", nil, false
	}
	if _, err := api.ParseRole(string(u.Role)); err != nil {
		return "", nil, false
	}
	return token, &u, true
}

func (m *Manager) set(c *gin.Context, name, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	// token cookie is HttpOnly; the user snapshot is readable by page scripts
	c.SetCookie(name, value, maxAgeSeconds, "/", "", m.secure, name == tokenCookie)
}
