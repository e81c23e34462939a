package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	validation "github.com/jellydator/validation"

	"github.com/spec-kit/token-service/internal/api/dto"
	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/service"
	apperrors "github.com/spec-kit/token-service/pkg/util"
)

// TokenHandler exposes the login endpoint.
type TokenHandler struct {
	auth *service.AuthService
}

// NewTokenHandler constructs handler.
func NewTokenHandler(authService *service.AuthService) *TokenHandler {
	return &TokenHandler{auth: authService}
}

// Issue handles POST /token.
func (h *TokenHandler) Issue(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	if req.Username == "" && req.Password == "" {
		if err := c.QueryParser(&req); err != nil {
			return apperrors.NewValidationError("invalid query parameters", nil)
		}
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("username and password required", validationDetails(err))
	}

	issued, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return apperrors.NewInvalidCredentials()
		}
		return apperrors.NewInternalError(err)
	}

	return c.JSON(dto.TokenResponse{
		AccessToken: issued.AccessToken,
		TokenType:   issued.TokenType,
		ExpiresAt:   issued.ExpiresAt,
	})
}

func validationDetails(err error) map[string]any {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}
	details := make(map[string]any, len(errs))
	for field, fieldErr := range errs {
		details[field] = fieldErr.Error()
	}
	return details
}
