package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, VerifyPassword(hash, "hunter2hunter2"))
	assert.Error(t, VerifyPassword(hash, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same password")
	assert.NoError(t, err)
	second, err := HashPassword("same password")
	assert.NoError(t, err)

	// bcrypt salts every hash, so equal inputs hash differently
	assert.NotEqual(t, first, second)
}
