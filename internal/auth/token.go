package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject guards the precondition that callers pass an authenticated principal.
var ErrEmptySubject = errors.New("subject must not be empty")

// TokenClaims is the decoded identity carried by a token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
	Audience  string
	Issuer    string
}

// Issuer signs session tokens. It trusts that the subject was already authenticated.
type Issuer struct {
	cfg SigningConfig
	now func() time.Time
}

// NewIssuer builds an Issuer bound to cfg.
func NewIssuer(cfg SigningConfig, opts ...Option) *Issuer {
	o := buildOptions(opts)
	return &Issuer{cfg: cfg, now: o.now}
}

// IssueToken builds and signs a token for subject that expires TokenLifetime from now.
func (i *Issuer) IssueToken(subject string) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, ErrEmptySubject
	}

	expiresAt := i.now().UTC().Add(TokenLifetime).Truncate(time.Second)
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": expiresAt.Unix(),
		"aud": i.cfg.audience,
		"iss": i.cfg.issuer,
	}

	token := jwt.NewWithClaims(i.cfg.method(), claims)
	tokenString, err := token.SignedString(i.cfg.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return tokenString, expiresAt, nil
}
