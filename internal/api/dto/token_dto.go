package dto

import (
	"time"

	validation "github.com/jellydator/validation"
)

// TokenRequest carries the credential pair. Fields may arrive in a JSON or
// form body, or as query parameters.
type TokenRequest struct {
	Username string `json:"username" form:"username" query:"username"`
	Password string `json:"password" form:"password" query:"password"`
}

// Validate checks that both fields are present.
func (r *TokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse is returned by POST /token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ProtectedResponse is returned by GET /protected.
type ProtectedResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}
