package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
	"github.com/sarthakSixt/rental/services/rental-api/internal/service"
)

type AuthHandler struct {
	svc *service.AuthSvc
}

func NewAuthHandler(svc *service.AuthSvc) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func loginResponse(u *domain.User, token string) api.LoginResponse {
	return api.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var in api.SignupRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	if in.Email == "" || in.Password == "" {
		c.JSON(http.StatusBadRequest, api.Err("Email and password are required"))
		return
	}
	u, token, err := h.svc.Signup(c, in)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, api.OK("User registered successfully", loginResponse(u, token)))
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in api.LoginRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, api.Err(err.Error()))
		return
	}
	u, token, err := h.svc.Login(c, in.Email, in.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.Err(err.Error()))
		return
	}
	c.JSON(http.StatusOK, api.OK("Login successful", loginResponse(u, token)))
}
