package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jnbreid/todo-backend/internal/domain"
)

// DefaultTokenTTL matches the lifetime the login flow has always handed out.
const DefaultTokenTTL = 24 * time.Hour

// Claims is the validated content of an identity token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and validates signed, stateless identity tokens
// (HS256 JWTs). Validation never consults external state; the clock is an
// argument so expiry behaviour is testable.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the fixed lifetime applied to issued tokens.
func (c *TokenCodec) TTL() time.Duration { return c.ttl }

// Issue signs a token for username expiring at now + TTL.
func (c *TokenCodec) Issue(username string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Validate parses and verifies tokenString relative to now. Every failure
// mode (unparseable input, signature mismatch, wrong algorithm, expiry)
// collapses to domain.ErrTokenInvalid so an external observer cannot tell
// an expired token from a forged one.
func (c *TokenCodec) Validate(tokenString string, now time.Time) (Claims, error) {
	var rc jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &rc,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, domain.ErrTokenInvalid
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !token.Valid {
		return Claims{}, domain.ErrTokenInvalid
	}
	if rc.Subject == "" || rc.ExpiresAt == nil {
		return Claims{}, domain.ErrTokenInvalid
	}
	// The expiry bound is strict: a token whose expiry equals now is
	// already dead.
	if !now.Before(rc.ExpiresAt.Time) {
		return Claims{}, domain.ErrTokenInvalid
	}
	claims := Claims{
		Subject:   rc.Subject,
		ExpiresAt: rc.ExpiresAt.Time,
	}
	if rc.IssuedAt != nil {
		claims.IssuedAt = rc.IssuedAt.Time
	}
	return claims, nil
}
