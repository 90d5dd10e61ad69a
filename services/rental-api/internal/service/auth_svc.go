package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sarthakSixt/rental/pkg/api"
	"github.com/sarthakSixt/rental/pkg/auth"
	"github.com/sarthakSixt/rental/services/rental-api/internal/domain"
)

var ErrInvalidCredentials = errors.New("Invalid email or password")

type AuthSvc struct {
	users    UserStore
	tokenTTL time.Duration
}

func NewAuthSvc(users UserStore, tokenTTL time.Duration) *AuthSvc {
	return &AuthSvc{users: users, tokenTTL: tokenTTL}
}

// Signup creates the account and logs it in atomically: one request, one
// resulting session token.
func (s *AuthSvc) Signup(ctx context.Context, in api.SignupRequest) (*domain.User, string, error) {
	if _, err := s.users.ByEmail(ctx, in.Email); err == nil {
		return nil, "", fmt.Errorf("Email already registered: %s", in.Email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  in.PhoneNumber,
		Role:         api.RoleCustomer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := auth.CreateAccessToken(u.ID, string(u.Role), u.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := auth.CreateAccessToken(u.ID, string(u.Role), u.Email, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthSvc) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("User not found with ID: %d", id)
	}
	return u, nil
}
