package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewArgon2Hasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	assert.True(t, hasher.Verify(encoded, "correct horse battery staple"))
	assert.False(t, hasher.Verify(encoded, "wrong password"))
	assert.False(t, hasher.Verify(encoded, ""))
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password must differ by salt")
	assert.True(t, hasher.Verify(first, "pw123456"))
	assert.True(t, hasher.Verify(second, "pw123456"))
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	for _, hash := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=1,p=4$bad",
		"$bcrypt$whatever",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$!!!",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA",
	} {
		assert.False(t, hasher.Verify(hash, "anything"), "hash %q must fail verification", hash)
	}
}
