package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, VerifyPassword("password123", hash))
	assert.False(t, VerifyPassword("wrongpassword", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("password123")
	assert.NoError(t, err)
	second, err := HashPassword("password123")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("password123", first))
	assert.True(t, VerifyPassword("password123", second))
}

func TestVerifyMalformedStoredHash(t *testing.T) {
	assert.False(t, VerifyPassword("password123", ""))
	assert.False(t, VerifyPassword("password123", "short"))
	assert.False(t, VerifyPassword("password123", "zzzzzzzzzzzzzzzz0000"))
}
