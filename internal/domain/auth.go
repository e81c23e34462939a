package domain

import "time"

// TokenTypeBearer is the only token type the service hands out.
const TokenTypeBearer = "bearer"

// IssuedToken is the result of a successful login.
type IssuedToken struct {
	AccessToken string
	TokenType   string
	Subject     string
	ExpiresAt   time.Time
}
