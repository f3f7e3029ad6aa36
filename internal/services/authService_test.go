package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayvista/stayvista-server/internal/httperr"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	token, err := IssueToken("a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestVerifyTokenMissing(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	_, err := VerifyToken("")
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)
}

func TestVerifyTokenMalformed(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	_, err := VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	token, err := IssueToken("a@x.com")
	require.NoError(t, err)

	t.Setenv("ACCESS_TOKEN_SECRET", "another-secret")
	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)
}

func TestVerifyTokenExpired(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(expired)
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)
}

func TestVerifyTokenMissingEmailClaim(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)
}
