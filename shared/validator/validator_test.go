package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buslink/shared/failure"
	"buslink/shared/validator"
)

type payload struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
}

func TestValidate(t *testing.T) {
	t.Run("valid body decodes", func(t *testing.T) {
		var data payload

		err := validator.Validate(strings.NewReader(`{"username":"sarah","email":"sarah@example.com"}`), &data)

		require.NoError(t, err)
		assert.Equal(t, "sarah", data.Username)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		var data payload

		err := validator.Validate(strings.NewReader(`{"username":`), &data)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("failed rule is a bad request with a field message", func(t *testing.T) {
		var data payload

		err := validator.Validate(strings.NewReader(`{"username":"sarah","email":"not-an-email"}`), &data)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
		assert.Contains(t, err.Error(), "Email")
	})
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("sarah@example.com", "email"))
	assert.Error(t, validator.ValidateVar("not-an-email", "email"))
}
