// Package session emite y valida los tokens de sesión del panel de admin.
//
// Son JWT HS256 de corta vida con jti único; viajan en la cookie de sesión
// y opcionalmente como Bearer token (CLI).
package session

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalid = errors.New("session: invalid token")
	ErrExpired = errors.New("session: token expired")
)

// Claims del token de sesión de admin.
type Claims struct {
	Email string `json:"email"`
	jwtv5.RegisteredClaims
}

// Issuer firma y valida tokens con un secreto compartido.
type Issuer struct {
	secret []byte
	iss    string
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Issuer{secret: []byte(secret), iss: "folio", ttl: ttl}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue firma un token para el admin con el sub y email dados.
func (i *Issuer) Issue(adminID, email string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    i.iss,
			Subject:   adminID,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
	}
	tok := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Verify valida firma, issuer y expiración. Solo acepta HS256.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwtv5.ParseWithClaims(raw, claims, func(t *jwtv5.Token) (any, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return i.secret, nil
	}, jwtv5.WithIssuer(i.iss), jwtv5.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid {
		return nil, ErrInvalid
	}
	return claims, nil
}
