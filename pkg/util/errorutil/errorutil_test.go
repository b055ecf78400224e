package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	req := require.New(t)

	req.Nil(ToDomainError(nil))

	wrapped := fmt.Errorf("lookup: %w", NewNotFound("customer", map[string]any{"id": "C9"}))
	de := ToDomainError(wrapped)
	req.Equal("NOT_FOUND", de.Code)
	req.Equal(http.StatusNotFound, de.HTTPStatus)
	req.Equal("customer not found", de.Message)

	plain := errors.New("boom")
	de = ToDomainError(plain)
	req.Equal("INTERNAL_ERROR", de.Code)
	req.Equal(http.StatusInternalServerError, de.HTTPStatus)
	req.ErrorIs(de, plain)
}

func TestNamedErrors(t *testing.T) {
	req := require.New(t)

	de := ToDomainError(NewInvalidCredentials())
	req.Equal(http.StatusUnauthorized, de.HTTPStatus)
	req.Equal("Invalid credentials. Please try again.", de.Message)

	de = ToDomainError(NewOverlayClosed("assign_lead"))
	req.Equal("OVERLAY_CLOSED", de.Code)
	req.Equal(http.StatusConflict, de.HTTPStatus)
	req.Equal("assign_lead", de.Details["kind"])
}
