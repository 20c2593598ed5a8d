package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-at-least-32-chars"

func signedToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestNewTokenVerifier_RequiresKeyMaterial(t *testing.T) {
	_, err := NewTokenVerifier(VerifierConfig{})
	assert.Error(t, err)
}

func TestNewTokenVerifier_RejectsBadPEM(t *testing.T) {
	_, err := NewTokenVerifier(VerifierConfig{PublicKeyPEM: "not a pem block"})
	assert.Error(t, err)
}

func TestVerify_Success(t *testing.T) {
	verifier, err := NewTokenVerifier(VerifierConfig{Secret: testSecret})
	require.NoError(t, err)

	tokenString := signedToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "subject-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := verifier.Verify(tokenString)

	require.NoError(t, err)
	assert.Equal(t, "subject-id", claims["sub"])
}

func TestVerify_ExpiredToken(t *testing.T) {
	verifier, err := NewTokenVerifier(VerifierConfig{Secret: testSecret})
	require.NoError(t, err)

	tokenString := signedToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "subject-id",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)

	assert.Error(t, err)
}

func TestVerify_UnexpectedSigningMethod(t *testing.T) {
	verifier, err := NewTokenVerifier(VerifierConfig{Secret: testSecret})
	require.NoError(t, err)

	tokenString := signedToken(t, jwt.SigningMethodHS384, jwt.MapClaims{
		"sub": "subject-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)

	assert.Error(t, err)
}

func TestVerify_WrongSecret(t *testing.T) {
	verifier, err := NewTokenVerifier(VerifierConfig{Secret: "a-different-secret-entirely-here"})
	require.NoError(t, err)

	tokenString := signedToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "subject-id",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)

	assert.Error(t, err)
}

func TestVerify_IssuerChecked(t *testing.T) {
	verifier, err := NewTokenVerifier(VerifierConfig{Secret: testSecret, Issuer: "expected-issuer"})
	require.NoError(t, err)

	tokenString := signedToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "subject-id",
		"iss": "another-issuer",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = verifier.Verify(tokenString)

	assert.Error(t, err)
}
