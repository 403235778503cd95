package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"buslink/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"bad request", failure.BadRequest(errors.New("broken payload")), http.StatusBadRequest, "broken payload"},
		{"bad request from string", failure.BadRequestFromString("cart is empty"), http.StatusBadRequest, "cart is empty"},
		{"unauthorized", failure.Unauthorized("invalid token"), http.StatusUnauthorized, "invalid token"},
		{"forbidden", failure.Forbidden("no access"), http.StatusForbidden, "no access"},
		{"not found", failure.NotFound("route"), http.StatusNotFound, "route"},
		{"conflict", failure.Conflict("username already taken"), http.StatusConflict, "username already taken"},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
			assert.Equal(t, tt.wantMsg, tt.err.Error())
		})
	}
}

func TestGetCode(t *testing.T) {
	t.Run("plain errors default to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	})

	t.Run("wrapped failures keep their code", func(t *testing.T) {
		wrapped := fmt.Errorf("loading cart: %w", failure.NotFound("cart item"))

		assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	})
}

func TestNilErrors(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}
