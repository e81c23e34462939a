package auth

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// fragmentLen is how many characters from each end of a rejected token may be logged.
const fragmentLen = 10

// Verifier validates presented tokens against a SigningConfig.
type Verifier struct {
	cfg    SigningConfig
	parser *jwt.Parser
	logger *zap.Logger
	now    func() time.Time
}

// NewVerifier builds a Verifier bound to cfg. A nil logger disables diagnostics.
func NewVerifier(cfg SigningConfig, logger *zap.Logger, opts ...Option) *Verifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := buildOptions(opts)
	return &Verifier{
		cfg: cfg,
		// Claims are checked below in a fixed order, so the library only parses and checks the MAC.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{cfg.method().Alg()}),
			jwt.WithStrictDecoding(),
			jwt.WithoutClaimsValidation(),
		),
		logger: logger,
		now:    o.now,
	}
}

// VerifyToken checks structure, signature, expiry, audience and issuer in that order and
// stops at the first failure. Every returned error is a *VerificationError.
func (v *Verifier) VerifyToken(tokenString string) (claims *TokenClaims, err error) {
	defer func() {
		if r := recover(); r != nil {
			claims = nil
			err = newVerificationError(KindUnknown, fmt.Errorf("panic during verification: %v", r))
		}
		if err != nil {
			v.logFailure(tokenString, err)
		}
	}()

	registered := &jwt.RegisteredClaims{}
	if token, err := v.parser.ParseWithClaims(tokenString, registered, v.keyFunc); err != nil {
		return nil, classifyParseError(token, err)
	}

	if registered.ExpiresAt == nil {
		return nil, newVerificationError(KindMalformedToken, errors.New("token has no exp claim"))
	}
	if registered.Subject == "" {
		return nil, newVerificationError(KindMalformedToken, errors.New("token has no sub claim"))
	}
	now := v.now()
	if !now.Before(registered.ExpiresAt.Time) {
		return nil, newVerificationError(KindExpired, fmt.Errorf("expired at %s", registered.ExpiresAt.UTC().Format(time.RFC3339)))
	}

	if !slices.Contains(registered.Audience, v.cfg.audience) {
		return nil, newVerificationError(KindInvalidAudience, nil)
	}

	if registered.Issuer != v.cfg.issuer {
		return nil, newVerificationError(KindInvalidIssuer, nil)
	}

	v.logger.Debug("token verified", zap.String("subject", registered.Subject))
	return &TokenClaims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.UTC(),
		Audience:  v.cfg.audience,
		Issuer:    registered.Issuer,
	}, nil
}

func (v *Verifier) keyFunc(_ *jwt.Token) (any, error) {
	return v.cfg.key, nil
}

// classifyParseError maps library errors onto kinds. Header and payload decoded and the
// algorithm resolved (token.Method set) means a malformed error can only come from the
// signature segment, which is a signature failure rather than a structural one.
func classifyParseError(token *jwt.Token, err error) *VerificationError {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed) && token != nil && token.Method != nil:
		return newVerificationError(KindInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return newVerificationError(KindMalformedToken, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return newVerificationError(KindInvalidSignature, err)
	default:
		return newVerificationError(KindUnknown, err)
	}
}

func (v *Verifier) logFailure(tokenString string, err error) {
	kind := KindOf(err)
	fields := []zap.Field{
		zap.String("reason", kind.Code()),
		zap.String("token_fragment", tokenFragment(tokenString)),
		zap.Error(err),
	}
	if kind == KindUnknown {
		v.logger.Error("token verification error", fields...)
		return
	}
	v.logger.Warn("token verification failed", fields...)
}

// tokenFragment keeps a correlation handle without exposing the token. Short inputs are
// reported only by length since the edges would cover most of the value.
func tokenFragment(token string) string {
	if len(token) < 32 {
		return "len=" + strconv.Itoa(len(token))
	}
	return token[:fragmentLen] + "..." + token[len(token)-fragmentLen:]
}
