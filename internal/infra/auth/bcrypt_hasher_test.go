package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cryofood/config"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	secret := "frozen-peas"
	hash, err := hasher.Hash(secret)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, secret, hash)
	assert.True(t, hasher.Check(secret, hash))
}

func TestBcryptHasher_SaltPerHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same")
	require.NoError(t, err)
	second, err := hasher.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same", first))
	assert.True(t, hasher.Check("same", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	hash, err := hasher.Hash("admin")
	require.NoError(t, err)

	assert.True(t, hasher.Check("admin", hash))
	assert.False(t, hasher.Check("Admin", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("admin", "invalid_hash"))
	assert.False(t, hasher.Check("admin", ""))
}

func TestBcryptHasher_TooLongSecret(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_Cost(t *testing.T) {
	testCases := []struct {
		name     string
		cost     int
		expected int
	}{
		{name: "custom", cost: 6, expected: 6},
		{name: "zero falls back", cost: 0, expected: bcrypt.DefaultCost},
		{name: "too high falls back", cost: bcrypt.MaxCost + 1, expected: bcrypt.DefaultCost},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hasher := NewBcryptHasherWithCost(tc.cost)
			assert.Equal(t, tc.expected, hasher.(*bcryptHasher).cost)
		})
	}
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}

	hasher := NewBcryptHasher(cfg)
	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}
