package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is fixed; tokens are valid for one hour from issuance.
const TokenLifetime = time.Hour

var (
	// ErrEmptySigningKey is returned by NewSigningConfig when no key is configured.
	ErrEmptySigningKey = errors.New("signing key must not be empty")
	// ErrEmptyAudience is returned by NewSigningConfig when no audience is configured.
	ErrEmptyAudience = errors.New("expected audience must not be empty")
	// ErrEmptyIssuer is returned by NewSigningConfig when no issuer is configured.
	ErrEmptyIssuer = errors.New("expected issuer must not be empty")
)

// SigningConfig is the key material and identity shared by Issuer and Verifier.
// It is built once at startup and never mutated, so concurrent reads need no locking.
type SigningConfig struct {
	key      []byte
	audience string
	issuer   string
}

// NewSigningConfig validates and copies the startup values.
func NewSigningConfig(key []byte, audience, issuer string) (SigningConfig, error) {
	if len(key) == 0 {
		return SigningConfig{}, ErrEmptySigningKey
	}
	if audience == "" {
		return SigningConfig{}, ErrEmptyAudience
	}
	if issuer == "" {
		return SigningConfig{}, ErrEmptyIssuer
	}
	return SigningConfig{
		key:      append([]byte(nil), key...),
		audience: audience,
		issuer:   issuer,
	}, nil
}

// Ready reports whether the config was built by NewSigningConfig. The zero value is not ready.
func (c SigningConfig) Ready() bool {
	return len(c.key) > 0 && c.audience != "" && c.issuer != ""
}

// Audience returns the audience written into and required from every token.
func (c SigningConfig) Audience() string { return c.audience }

// Issuer returns the issuer written into and required from every token.
func (c SigningConfig) Issuer() string { return c.issuer }

// Algorithm is always HS256.
func (c SigningConfig) Algorithm() string { return c.method().Alg() }

func (c SigningConfig) method() jwt.SigningMethod {
	return jwt.SigningMethodHS256
}

// Option tunes an Issuer or Verifier.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock replaces the wall clock. Tests use it to move time forward.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
