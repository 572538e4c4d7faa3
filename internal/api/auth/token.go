package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopmesh/auth-service/internal/db"
)

const tokenIssuer = "auth-service"

// TokenService issues and verifies the HMAC-signed bearer tokens every
// downstream service accepts. Verification is a pure function of the
// token and the shared secret: no database lookup, no network call, so
// any service holding the same secret can verify independently.
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

// Issue signs a token whose claims are a snapshot of the user record.
// The token is valid from now until now+TTL.
func (ts *TokenService) Issue(u *db.User) (string, error) {
	now := time.Now()
	claims := db.Claims{
		UserID:  u.ID,
		Email:   u.Email,
		Profile: u.Profile,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TTL)),
			Issuer:    tokenIssuer,
			Subject:   u.ID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.Secret)
}

// Verify checks the signature and expiry of a raw token and returns
// the embedded claims. Expired tokens report ErrExpiredToken; any
// other defect, including a single flipped bit, reports
// ErrInvalidToken.
func (ts *TokenService) Verify(raw string) (*db.Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &db.Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("alg not allowed")
		}
		return ts.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*db.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
