package model

import "github.com/golang-jwt/jwt/v5"

// TokenRequest is the request body for POST /v1/auth/token
type TokenRequest struct {
	ClientKey string `json:"clientKey"`
	AppID     string `json:"appId,omitempty"`
}

// TokenResponse carries the issued client token
type TokenResponse struct {
	Token    string `json:"token"`
	ClientID string `json:"clientId"`
}

// ClientClaims are the JWT claims for a client app token
type ClientClaims struct {
	ClientID string `json:"clientId"`
	jwt.RegisteredClaims
}
