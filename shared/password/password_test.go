package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buslink/shared/password"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.NoError(t, password.Verify("correct-horse", hash))
	assert.ErrorIs(t, password.Verify("wrong", hash), password.ErrInvalidPassword)
}

func TestHashEmptyPassword(t *testing.T) {
	_, err := password.Hash("")

	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestVerifyEmptyInputs(t *testing.T) {
	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("correct-horse", ""), password.ErrInvalidPassword)
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("correct-horse")
	require.NoError(t, err)

	second, err := password.Hash("correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
