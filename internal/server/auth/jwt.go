// Package auth issues and verifies the bearer tokens of the HTTP API. A token
// names the identity it was issued to and carries a unique id; whether that
// token still belongs to the current login is checked by the caller.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Claims are the registered claims plus the identity id.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"uid"`
}

// Issuer signs HS256 tokens with a fixed validity.
type Issuer struct {
	secret   []byte
	validity time.Duration
	clock    clockwork.Clock
}

// NewIssuer returns an Issuer. A nil clock means the real clock.
func NewIssuer(secret []byte, validity time.Duration, clock clockwork.Clock) *Issuer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Issuer{secret: secret, validity: validity, clock: clock}
}

// GenerateToken signs a token for userID and returns it together with its
// unique id (the jti claim).
func (i *Issuer) GenerateToken(userID int) (string, string, error) {
	now := i.clock.Now()
	tokenID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", "", err
	}

	return tokenString, tokenID, nil
}

// ParseToken verifies the token and returns its claims. Expired tokens yield
// common.ErrTokenExpired, anything else that fails verification
// common.ErrInvalidToken.
func (i *Issuer) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.ID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
