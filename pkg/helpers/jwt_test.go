package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	token, exp, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(m.AccessTTL), exp, 2*time.Second)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	m := newTestManager()

	token, _, err := m.GenerateRefreshToken("user-42")
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.Subject)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestParse_RejectsWrongTokenType(t *testing.T) {
	m := newTestManager()

	refresh, _, err := m.GenerateRefreshToken("user-42")
	require.NoError(t, err)
	access, _, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestParse_RejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	token, _, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewJWTManager("other-secret", 15*time.Minute, time.Hour)

	token, _, err := m.GenerateAccessToken("user-42")
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParse_RejectsGarbage(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseAccessToken("not-a-token")
	assert.Error(t, err)
}
