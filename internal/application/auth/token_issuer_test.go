package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() Identity {
	return Identity{UserID: "u1", Name: "Ada", Email: "ada@example.com"}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, expiresAt, err := issuer.IssueSession(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	identity, err := issuer.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, testIdentity(), identity)
}

func TestTokenIssuer_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issued := time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, _, err := issuer.IssueSession(testIdentity())
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = issuer.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	token, _, err := issuer.IssueSession(testIdentity())
	require.NoError(t, err)

	_, err = other.ParseSession(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestTokenIssuer_GarbageToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.ParseSession(token)
		assert.ErrorIs(t, err, ErrInvalidSession, "token %q", token)
	}
}
