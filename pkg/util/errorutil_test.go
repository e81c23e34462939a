package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, ToDomainError(nil))
	})

	t.Run("wrapped domain error is preserved", func(t *testing.T) {
		wrapped := fmt.Errorf("login: %w", NewInvalidCredentials())

		got := ToDomainError(wrapped)
		require.NotNil(t, got)
		assert.Equal(t, "INVALID_CREDENTIALS", got.Code)
		assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := errors.New("boom")

		got := ToDomainError(cause)
		require.NotNil(t, got)
		assert.Equal(t, "INTERNAL_ERROR", got.Code)
		assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
		assert.ErrorIs(t, got, cause)
		assert.NotContains(t, got.Message, "boom")
	})
}

func TestNewUnauthorized(t *testing.T) {
	err := ToDomainError(NewUnauthorized("TOKEN_EXPIRED", "Token has expired"))
	assert.Equal(t, "TOKEN_EXPIRED", err.Code)
	assert.Equal(t, http.StatusUnauthorized, err.HTTPStatus)
	assert.Equal(t, "Token has expired", err.Error())

	fallback := ToDomainError(NewUnauthorized("", "nope"))
	assert.Equal(t, "UNAUTHORIZED", fallback.Code)
}
