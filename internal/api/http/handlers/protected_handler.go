package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/token-service/internal/api/dto"
	"github.com/spec-kit/token-service/internal/auth"
	apperrors "github.com/spec-kit/token-service/pkg/util"
)

// ProtectedHandler serves the example protected resource.
type ProtectedHandler struct{}

// NewProtectedHandler constructs handler.
func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

// Get handles GET /protected. It must run behind auth.AuthMiddleware.
func (h *ProtectedHandler) Get(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("", "not authenticated")
	}
	return c.JSON(dto.ProtectedResponse{
		Message: "You are authorized",
		User:    claims.Subject,
	})
}
