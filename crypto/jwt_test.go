package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordrush/domain"
)

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("user-123", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userId, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userId)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("user-123", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrExpiredToken)
}

func TestJWTManager_WrongKey(t *testing.T) {
	t.Parallel()
	signer := NewJWTManager("one-secret", time.Hour)
	verifier := NewJWTManager("another-secret", time.Hour)

	token, err := signer.Generate("user-123", time.Now())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidTokenSignature)
}

func TestJWTManager_RejectsUnexpectedSigningAlg(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrInvalidSigningAlg)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour)

	for _, garbage := range []string{"", "not.a.token", "aaaa.bbbb"} {
		_, err := m.Verify(garbage)
		assert.ErrorIs(t, err, domain.ErrCorruptedToken, "token %q", garbage)
	}
}

func TestJWTManager_MissingSubject(t *testing.T) {
	t.Parallel()
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("", time.Now())
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrCorruptedToken)
}
