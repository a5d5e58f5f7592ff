package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ComparePassword(hash, "s3cret"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong"), ErrPasswordMismatch)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	err := ComparePassword("not-a-bcrypt-hash", "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
