package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-garment-supply/internal/apperr"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.Verify(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := NewManager("test-secret")

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken, "token %q", token)
	}
}

func TestManager_RejectsForeignSecret(t *testing.T) {
	token, err := NewManager("secret-one").Issue(42)
	require.NoError(t, err)

	_, err = NewManager("secret-two").Verify(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestManager_RejectsExpired(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = NewManager(secret).Verify(token)
	assert.ErrorIs(t, err, apperr.ErrExpiredToken)
}

func TestManager_RejectsUnsignedAlgorithm(t *testing.T) {
	claims := &Claims{UserID: 42}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("test-secret").Verify(token)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}
