package utils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/itchan-dev/signup/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorAndStatusCode(t *testing.T) {
	t.Run("status error", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteErrorAndStatusCode(w, errors.Conflict("Email is already in use"))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "Email is already in use\n", w.Body.String())
	})

	t.Run("plain error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteErrorAndStatusCode(w, fmt.Errorf("db exploded"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal error\n", w.Body.String())
	})
}

func TestDecodeValidate(t *testing.T) {
	type body struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "valid", input: `{"email":"a@b.c","password":"x"}`},
		{name: "invalid json", input: `{"email":`, wantMsg: "Body is invalid json"},
		{name: "missing password", input: `{"email":"a@b.c"}`, wantMsg: "Required fields missing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b body
			err := DecodeValidate(strings.NewReader(tt.input), &b)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, "a@b.c", b.Email)
				return
			}
			var statusErr *errors.ErrorWithStatusCode
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
			assert.Equal(t, tt.wantMsg, statusErr.Message)
		})
	}
}
