package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrWrongPassphrase = errors.New("incorrect passphrase")
	ErrInvalidToken    = errors.New("invalid token")
)

// AdminClaims identifies an unlocked admin session.
type AdminClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// CheckPassphrase compares input against the shared passphrase verbatim.
// This gate is a convenience, not a security boundary.
func CheckPassphrase(input, passphrase string) error {
	if input != passphrase {
		return ErrWrongPassphrase
	}
	return nil
}

// CreateToken issues a token for sessionID. It carries no expiry: access
// lasts until the signing secret changes.
func CreateToken(sessionID, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("auth: JWT secret key not set")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "admin",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func VerifyToken(tokenString, secret string) (*AdminClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("auth: JWT secret key not set")
	}

	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
