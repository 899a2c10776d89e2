package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2"))

	assert.True(t, VerifyPassword(digest, "s3cret-password"))
	assert.False(t, VerifyPassword(digest, "wrong-password"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same-input")
	require.NoError(t, err)
	b, err := HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, VerifyPassword(a, "same-input"))
	assert.True(t, VerifyPassword(b, "same-input"))
}

func TestLongPasswordsTruncateConsistently(t *testing.T) {
	long := strings.Repeat("a", 100)
	digest, err := HashPassword(long)
	require.NoError(t, err)

	// only the first 72 bytes count
	assert.True(t, VerifyPassword(digest, long))
	assert.True(t, VerifyPassword(digest, strings.Repeat("a", 72)))
	assert.True(t, VerifyPassword(digest, strings.Repeat("a", 72)+"different-tail"))
	assert.False(t, VerifyPassword(digest, strings.Repeat("a", 71)))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	assert.False(t, VerifyPassword("", "anything"))
	assert.False(t, VerifyPassword("not-a-bcrypt-digest", "anything"))
	assert.False(t, VerifyPassword("$2a$garbage", "anything"))
}
