package secret_test

import (
	"regexp"
	"testing"

	"intake/shared/secret"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumericCode(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	seen := map[string]struct{}{}

	for range 50 {
		code, err := secret.NewNumericCode(6)
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)

		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}

func TestNewNumericCode_InvalidLength(t *testing.T) {
	_, err := secret.NewNumericCode(0)

	assert.Error(t, err)
}

func TestHashAndVerify(t *testing.T) {
	hash, err := secret.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.NoError(t, secret.Verify("123456", hash))
	assert.ErrorIs(t, secret.Verify("654321", hash), secret.ErrMismatch)
	assert.ErrorIs(t, secret.Verify("", hash), secret.ErrMismatch)
	assert.ErrorIs(t, secret.Verify("123456", ""), secret.ErrMismatch)
}

func TestHash_Empty(t *testing.T) {
	_, err := secret.Hash("")

	assert.ErrorIs(t, err, secret.ErrEmpty)
}

func TestVerify_MalformedHash(t *testing.T) {
	err := secret.Verify("123456", "not-a-bcrypt-hash")

	require.Error(t, err)
	assert.NotErrorIs(t, err, secret.ErrMismatch)
}
