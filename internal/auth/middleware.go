package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/observability"
	apperrors "github.com/spec-kit/token-service/pkg/util"
)

const claimsKey = "auth_claims"

// AuthMiddleware validates bearer tokens and exposes the claims to handlers.
type AuthMiddleware struct {
	verifier *Verifier
	metrics  *observability.Metrics
}

// NewAuthMiddleware constructs middleware. metrics may be nil.
func NewAuthMiddleware(verifier *Verifier, metrics *observability.Metrics) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, metrics: metrics}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		m.metrics.RecordVerification("MISSING_OR_MALFORMED_AUTH_HEADER")
		return apperrors.NewUnauthorized("MISSING_OR_MALFORMED_AUTH_HEADER", "Invalid or missing Authorization header")
	}

	claims, err := m.verifier.VerifyToken(token)
	if err != nil {
		m.metrics.RecordVerification(KindOf(err).Code())
		return VerificationFailure(err)
	}

	m.metrics.RecordVerification("VALID")
	c.Locals(claimsKey, claims)
	return c.Next()
}

// ExtractBearerToken returns the token from an Authorization header value of the form
// "Bearer <token>". The scheme is case-insensitive.
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingOrMalformedAuthHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrMissingOrMalformedAuthHeader
	}
	token := strings.TrimSpace(parts[1])
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", ErrMissingOrMalformedAuthHeader
	}
	return token, nil
}

// VerificationFailure maps a verifier error onto the HTTP error contract. Unknown
// failures become 500 so they are not mistaken for ordinary rejections.
func VerificationFailure(err error) error {
	kind := KindOf(err)
	switch kind {
	case KindMalformedToken, KindInvalidSignature, KindExpired, KindInvalidAudience, KindInvalidIssuer:
		return apperrors.NewUnauthorized(kind.Code(), kind.Message())
	default:
		return &apperrors.DomainError{
			Code:       kind.Code(),
			Message:    kind.Message(),
			HTTPStatus: fiber.StatusInternalServerError,
			Err:        err,
		}
	}
}

// ClaimsFromContext retrieves the verified claims stored by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*TokenClaims, bool) {
	val := c.Locals(claimsKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*TokenClaims)
	return claims, ok
}
