package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWithStatusCode(t *testing.T) {
	err := Conflict("Email is already in use")
	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, "Email is already in use", err.Error())
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").StatusCode)
}

func TestAPIErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", &APIError{StatusCode: 500, Payload: "Internal error"})

	var apiErr *APIError
	require.True(t, stderrors.As(wrapped, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
	assert.Equal(t, "Internal error", apiErr.Payload)
	assert.Equal(t, "api responded 500: Internal error", apiErr.Error())
}
