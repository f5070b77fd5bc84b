package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSalt(t *testing.T) {
	h := SHA256Hasher{}

	s1, err := h.GenerateSalt()
	assert.NoError(t, err)
	assert.Len(t, s1, 32)

	s2, err := h.GenerateSalt()
	assert.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestHashDeterministic(t *testing.T) {
	h := SHA256Hasher{}

	assert.Equal(t, h.Hash("p1", "salt"), h.Hash("p1", "salt"))
	assert.NotEqual(t, h.Hash("p1", "salt-a"), h.Hash("p1", "salt-b"))
	assert.NotEqual(t, h.Hash("p1", "salt"), h.Hash("p2", "salt"))
}

func TestVerify(t *testing.T) {
	h := SHA256Hasher{}
	salt, err := h.GenerateSalt()
	assert.NoError(t, err)
	hash := h.Hash("correct horse", salt)

	assert.True(t, h.Verify(hash, salt, "correct horse"))
	assert.False(t, h.Verify(hash, salt, "wrong horse"))
	assert.False(t, h.Verify(hash, "other-salt", "correct horse"))
}
