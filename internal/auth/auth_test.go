package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytfetch/internal/utils/errs"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret")

	token, err := m.CreateAccessToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := m.ParseAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").CreateAccessToken("alice")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").ParseAccessToken(token)
	assert.True(t, errors.Is(err, errs.ErrUnauthenticated))
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	m := NewTokenManager("test-secret")

	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := m.ParseAccessToken(raw)
		assert.True(t, errors.Is(err, errs.ErrUnauthenticated), raw)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPassword(hash, "correct-horse"))
	assert.False(t, CheckPassword(hash, "incorrect-horse"))
}
