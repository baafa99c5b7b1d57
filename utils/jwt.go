package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims is the subset of identity-provider token claims the services rely on.
type Claims struct {
	Subject  string
	Email    string
	Username string
	Roles    []string
}

// HasRole reports whether the claims carry the given realm role (case-insensitive).
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier struct {
	secret    []byte
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenVerifier builds a verifier. An RSA public key (PEM) takes precedence over the
// HMAC secret; at least one of them must be set.
func NewTokenVerifier(secret, publicKeyPEM, issuer string) (*TokenVerifier, error) {
	v := &TokenVerifier{secret: []byte(secret), issuer: issuer}
	if publicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse JWT public key: %w", err)
		}
		v.publicKey = key
	}
	if v.publicKey == nil && len(v.secret) == 0 {
		return nil, errors.New("either JWT_PUBLIC_KEY or JWT_SECRET must be configured")
	}
	return v, nil
}

// Verify parses and validates a token string and returns its claims.
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodRSA:
			if v.publicKey == nil {
				return nil, errors.New("unexpected signing method")
			}
			return v.publicKey, nil
		case *jwt.SigningMethodHMAC:
			if v.publicKey != nil || len(v.secret) == 0 {
				return nil, errors.New("unexpected signing method")
			}
			return v.secret, nil
		default:
			return nil, errors.New("unexpected signing method")
		}
	})
	if err != nil {
		return nil, err
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if v.issuer != "" && !mc.VerifyIssuer(v.issuer, true) {
		return nil, errors.New("unexpected token issuer")
	}

	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	claims := &Claims{Subject: sub}
	claims.Email, _ = mc["email"].(string)
	claims.Username, _ = mc["preferred_username"].(string)

	if realm, ok := mc["realm_access"].(map[string]interface{}); ok {
		if roles, ok := realm["roles"].([]interface{}); ok {
			for _, r := range roles {
				if s, ok := r.(string); ok {
					claims.Roles = append(claims.Roles, strings.ToUpper(s))
				}
			}
		}
	}
	return claims, nil
}

// GenerateToken signs an HS256 token shaped like an identity-provider access token.
// Used for local development and tests.
func GenerateToken(secret, subject, email string, roles []string, duration time.Duration) (string, error) {
	roleClaims := make([]interface{}, 0, len(roles))
	for _, r := range roles {
		roleClaims = append(roleClaims, r)
	}
	claims := jwt.MapClaims{
		"sub":                subject,
		"email":              email,
		"preferred_username": email,
		"realm_access":       map[string]interface{}{"roles": roleClaims},
		"iat":                time.Now().Unix(),
		"exp":                time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
