package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("secret124", digest))
	assert.False(t, h.Verify("secret123", "not-a-bcrypt-hash"))
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("secret123")
	require.NoError(t, err)
	b, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewPasswordHasher_OutOfRangeCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewPasswordHasher(12).cost)
}
