package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/domain"
	"github.com/spec-kit/token-service/internal/observability"
)

// AuthService gates token issuance behind the credential check.
type AuthService struct {
	credentials auth.CredentialChecker
	issuer      *auth.Issuer
	metrics     *observability.Metrics
	logger      *zap.Logger
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	Credentials auth.CredentialChecker
	Issuer      *auth.Issuer
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		credentials: deps.Credentials,
		issuer:      deps.Issuer,
		metrics:     deps.Metrics,
		logger:      logger,
	}
}

// Login issues a token for username once the credential pair matches.
// A mismatch returns auth.ErrInvalidCredentials and never reaches the issuer.
func (s *AuthService) Login(_ context.Context, username, password string) (*domain.IssuedToken, error) {
	if !s.credentials.Verify(username, password) {
		s.metrics.RecordLoginFailure()
		s.logger.Info("login rejected", zap.String("username", username))
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.IssueToken(username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.metrics.RecordTokenIssued()
	s.logger.Debug("token issued", zap.String("subject", username), zap.Time("expires_at", expiresAt))
	return &domain.IssuedToken{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		Subject:     username,
		ExpiresAt:   expiresAt,
	}, nil
}
