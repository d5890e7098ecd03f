package password_test

import (
	"testing"

	"job-use-backend/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	t.Run("Should verify matching password", func(t *testing.T) {
		assert.True(t, h.Verify("s3cret", hash))
	})

	t.Run("Should reject wrong password", func(t *testing.T) {
		assert.False(t, h.Verify("other", hash))
	})
}

func TestNewHasherFallsBackOnInvalidCost(t *testing.T) {
	h := password.NewHasher(99)
	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
