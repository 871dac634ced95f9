package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Minute}

	token, exp, err := m.GenerateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), exp, 5*time.Second)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, _, err := m.GenerateToken("alice")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestJWTManager_MalformedToken(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Minute}

	_, err := m.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := &JWTManager{Secret: []byte("issuer-secret"), TTL: time.Minute}
	verifier := &JWTManager{Secret: []byte("other-secret"), TTL: time.Minute}

	token, _, err := issuer.GenerateToken("alice")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestJWTManager_EmptySubjectRejected(t *testing.T) {
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Minute}

	token, _, err := m.GenerateToken("")
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
