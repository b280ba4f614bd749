package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashAndCompare(t *testing.T) {
	h := NewPasswordHasher(4)

	hash, err := h.Hash("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, h.Compare(hash, "hunter2"))
	assert.False(t, h.Compare(hash, "hunter3"))
}

func TestPasswordHashesAreSalted(t *testing.T) {
	h := NewPasswordHasher(4)

	first, err := h.Hash("hunter2")
	require.NoError(t, err)
	second, err := h.Hash("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
