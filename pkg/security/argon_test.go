package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonRoundtrip(t *testing.T) {
	a := NewArgon()

	hash, err := a.GenerateFromPassword("secret1")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$")
	assert.NotContains(t, hash, "secret1")

	ok, err := a.VerifyPasswd("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.VerifyPasswd("secret2", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonSaltsDiffer(t *testing.T) {
	a := NewArgon()

	h1, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	h2, err := a.GenerateFromPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)

	for _, h := range []string{h1, h2} {
		ok, err := a.VerifyPasswd("same-password", h)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestVerifyPasswdBadHash(t *testing.T) {
	a := NewArgon()

	_, err := a.VerifyPasswd("whatever", "not-a-phc-string")
	assert.Error(t, err)
}
