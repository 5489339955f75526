package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Oliverknowledge/Signal-Backend/internal/model"
)

var (
	ErrInvalidClientKey = errors.New("invalid client key")
	ErrInvalidToken     = errors.New("invalid or expired token")
)

// AuthService issues and validates client app tokens
type AuthService struct {
	clientKey string
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(clientKey, jwtSecret string) *AuthService {
	if clientKey == "" {
		clientKey = "dev-client-key"
	}
	if jwtSecret == "" {
		jwtSecret = "super-secret-key-change-in-production"
	}
	return &AuthService{
		clientKey: clientKey,
		jwtSecret: []byte(jwtSecret),
	}
}

// IssueClientToken exchanges the shared client key for a signed token
func (s *AuthService) IssueClientToken(clientKey string) (*model.TokenResponse, error) {
	if clientKey != s.clientKey {
		return nil, ErrInvalidClientKey
	}

	clientID := "client_" + uuid.New().String()[:8]

	claims := &model.ClientClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * 24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		Token:    tokenString,
		ClientID: clientID,
	}, nil
}

// ValidateClientToken validates a client JWT and returns claims
func (s *AuthService) ValidateClientToken(tokenString string) (*model.ClientClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.ClientClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.ClientClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
