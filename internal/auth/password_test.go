package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher(MinCost)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Verify("correct horse battery staple", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
	assert.False(t, hasher.Verify("", hash))
}

func TestPasswordHasher_SaltUniqueness(t *testing.T) {
	hasher := NewPasswordHasher(MinCost)

	first, err := hasher.Hash("same plaintext")
	require.NoError(t, err)
	second, err := hasher.Hash("same plaintext")
	require.NoError(t, err)

	// Random salts make identical plaintexts hash differently, yet both
	// verify against the original plaintext.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same plaintext", first))
	assert.True(t, hasher.Verify("same plaintext", second))
}

func TestPasswordHasher_OldCostStillVerifies(t *testing.T) {
	// A hash stored at a lower cost keeps verifying after the configured
	// cost changes; the cost travels inside the hash.
	old, err := bcrypt.GenerateFromPassword([]byte("legacy password"), bcrypt.MinCost)
	require.NoError(t, err)

	hasher := NewPasswordHasher(12)
	assert.True(t, hasher.Verify("legacy password", string(old)))
}

func TestNewPasswordHasher_EnforcesMinimumCost(t *testing.T) {
	hasher := NewPasswordHasher(1)

	hash, err := hasher.Hash("p")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, cost, MinCost)
}
