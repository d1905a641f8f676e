package auth

import (
	"testing"

	"referidos/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreta123", hash)

	assert.True(t, hasher.Check("secreta123", hash))
	assert.False(t, hasher.Check("otra-clave", hash))
	assert.False(t, hasher.Check("secreta123", "not-a-bcrypt-hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	second, err := hasher.Hash("secreta123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultsOnMissingConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secreta123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secreta123", hash))
}
