package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair is the access/refresh token pair handed to a client after login or refresh.
type TokenPair struct {
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// Token types carried in the "typ" claim. Verification checks the type as well as the
// signature, so the two kinds stay distinct even when both secrets are the same.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AccessClaims are the claims carried by an access token. Subject holds the user ID.
type AccessClaims struct {
	Email     string `json:"email"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// RefreshClaims are the claims carried by a refresh token. Subject holds the user ID and
// ID holds a random jti so that two tokens issued in the same second differ.
type RefreshClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}
