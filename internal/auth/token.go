package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// VerifierConfig carries the settings needed to validate bearer tokens.
// When PublicKeyPEM is set the verifier expects RS256 signatures (the scheme
// the identity provider issues by default); otherwise it falls back to an
// HS256 shared secret.
type VerifierConfig struct {
	Secret       string
	PublicKeyPEM string
	Issuer       string
}

// TokenVerifier parses and validates compact JWT bearer tokens.
type TokenVerifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier builds a TokenVerifier from config.
// Returns an error when the configured PEM block cannot be parsed, or when
// neither a public key nor a shared secret is configured.
func NewTokenVerifier(cfg VerifierConfig) (*TokenVerifier, error) {
	v := &TokenVerifier{issuer: cfg.Issuer}

	if cfg.PublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse token verification public key: %w", err)
		}
		v.publicKey = key
		return v, nil
	}

	if cfg.Secret == "" {
		return nil, errors.New("token verifier requires a public key or a shared secret")
	}
	v.secret = []byte(cfg.Secret)
	return v, nil
}

// Verify parses tokenString, checks its signature, expiry and (when
// configured) issuer, and returns the raw claim set.
func (v *TokenVerifier) Verify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	opts := []jwt.ParserOption{jwt.WithValidMethods(v.validMethods())}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (v *TokenVerifier) validMethods() []string {
	if v.publicKey != nil {
		return []string{jwt.SigningMethodRS256.Alg()}
	}
	return []string{jwt.SigningMethodHS256.Alg()}
}

func (v *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if v.publicKey != nil {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.publicKey, nil
	}
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.secret, nil
}
