package auth

import (
	"testing"

	"cliphub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{}
	// Minimum cost keeps the test fast; the algorithm is identical.
	cfg.Auth.BcryptCost = 4

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123", hash)

	assert.True(t, hasher.Check("Password123", hash))
	assert.False(t, hasher.Check("password123", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Password123")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("Password123", first))
	assert.True(t, hasher.Check("Password123", second))
}

func TestBcryptHasher_InvalidCostFallsBack(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.BcryptCost = 99

	hasher := NewBcryptHasher(cfg).(*bcryptHasher)
	assert.Equal(t, 10, hasher.cost)
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := newTestHasher()

	assert.False(t, hasher.Check("Password123", "not-a-bcrypt-hash"))
}
