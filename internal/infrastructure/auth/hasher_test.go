package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("Segura123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Segura123", hash)

	assert.NoError(t, hasher.Verify("Segura123", hash))
	assert.Error(t, hasher.Verify("Incorrecta1", hash))
}

func TestBcryptPasswordHasher_SaltsPerCall(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	a, err := hasher.Hash("Segura123")
	require.NoError(t, err)
	b, err := hasher.Hash("Segura123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNewBcryptPasswordHasher_CostClamping(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptPasswordHasher(99).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptPasswordHasher(bcrypt.MinCost).cost)
}

func TestBcryptPasswordHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	assert.Error(t, hasher.Verify("Segura123", "not-a-bcrypt-hash"))
}
