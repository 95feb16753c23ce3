package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	RoleAdmin = "admin"

	tokenTTL = 24 * time.Hour
)

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
}

type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authService struct {
	authorizer Authorizer
	adminPhone string
	jwtSecret  []byte
	now        func() time.Time
}

func NewAuthService(authorizer Authorizer, adminPhone string, jwtSecret string) AuthService {
	return &authService{
		authorizer: authorizer,
		adminPhone: adminPhone,
		jwtSecret:  []byte(jwtSecret),
		now:        time.Now,
	}
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if s.adminPhone != "" && subtle.ConstantTimeCompare([]byte(s.adminPhone), []byte(input.Phone)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if !s.authorizer.Authorize(input.Password) {
		return nil, ErrInvalidCredentials
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":  RoleAdmin,
		"role": RoleAdmin,
		"exp":  expiresAt.Unix(),
		"iat":  issuedAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
