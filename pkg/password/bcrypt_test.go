package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcrypt(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcrypt(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcrypt(bcrypt.MinCost).cost)
}

func TestBcrypt_Hash(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	t.Run("password too long", func(t *testing.T) {
		hash, err := b.Hash(strings.Repeat("a", MaxLength+1))

		assert.ErrorIs(t, err, ErrPasswordTooLong)
		assert.Empty(t, hash)
	})

	t.Run("success", func(t *testing.T) {
		hash, err := b.Hash("password")

		assert.NoError(t, err)
		assert.NotEqual(t, "password", hash)
		assert.True(t, strings.HasPrefix(hash, "$2a$"))
	})
}

func TestBcrypt_Verify(t *testing.T) {
	b := NewBcrypt(bcrypt.MinCost)

	hash, err := b.Hash("password")
	require.NoError(t, err)

	assert.True(t, b.Verify("password", hash))
	assert.False(t, b.Verify("Password", hash))
	assert.False(t, b.Verify("password", "not a hash"))
}
