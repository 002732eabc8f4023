package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sup3rsecret", "pepper")
	require.NoError(t, err)
	assert.NotEqual(t, "sup3rsecret", hash)

	assert.NoError(t, CheckPassword(hash, "sup3rsecret", "pepper"))
	assert.Error(t, CheckPassword(hash, "sup3rsecret", "other-pepper"))
	assert.Error(t, CheckPassword(hash, "wrongpassword", "pepper"))
}

func TestGenerateSecureToken(t *testing.T) {
	a := GenerateSecureToken()
	b := GenerateSecureToken()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[0-9a-f]{64}$`, a)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("maya@example.com"))
	assert.True(t, ValidEmail("maya.lopez+waitlist@sub.example.co"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("spaces in@example.com"))
	assert.False(t, ValidEmail("missing@tld"))
	assert.False(t, ValidEmail(strings.Repeat("a", 250)+"@example.com"))
}

func TestValidSkinType(t *testing.T) {
	for _, ok := range []string{"normal", "dry", "oily", "combination", "sensitive", "mature"} {
		assert.True(t, ValidSkinType(ok), ok)
	}
	assert.False(t, ValidSkinType("glittery"))
	assert.False(t, ValidSkinType("Normal"))
}
