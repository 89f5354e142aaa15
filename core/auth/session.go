package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frontdash/partner-desktop/core/model"
)

// Session holds the credentials for one authenticated restaurant account.
// Token and Restaurant are always set together; a session with only one of
// them never leaves this package.
type Session struct {
	Token      string           `json:"token,omitempty"`
	Restaurant model.Restaurant `json:"restaurant,omitempty"`
	ExpiresAt  time.Time        `json:"expiresAt,omitempty"`
}

// NewSession builds a session, deriving expiry from the token's exp claim
// when the token parses as a JWT. The signature is NOT verified — the server
// owns validity, the client only wants to know when to expect rejection.
func NewSession(token string, restaurant model.Restaurant) *Session {
	s := &Session{Token: token, Restaurant: restaurant}
	if claims := unverifiedClaims(token); claims != nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.ExpiresAt = exp.Time
		}
	}
	return s
}

func unverifiedClaims(token string) jwt.MapClaims {
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// Expired reports whether the session's token lifetime has passed. Sessions
// without a parseable expiry never expire locally.
func (s *Session) Expired(now time.Time) bool {
	if s == nil {
		return true
	}
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

// Clone returns a shallow copy so internal state is never shared out.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
