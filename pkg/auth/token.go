package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"

	"github.com/chainsafe/prediction-miniapp/pkg/user"
)

const (
	sessionIssuer  = "prediction-miniapp"
	keyDerivation  = "prediction-miniapp session signing key v1"
	signingKeySize = 32
)

// SessionClaims are carried by the session token. Only Subject is trusted;
// the cached profile fields are informational.
type SessionClaims struct {
	WalletAddress     string `json:"wallet_address"`
	Username          string `json:"username,omitempty"`
	IsProfileComplete bool   `json:"is_profile_complete"`
	IsWorldIDVerified bool   `json:"is_world_id_verified"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 session tokens.
type TokenIssuer struct {
	key []byte
	ttl time.Duration
}

// NewTokenIssuer derives the signing key from secret with HKDF-SHA256.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}
	key := make([]byte, signingKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyDerivation)), key); err != nil {
		return nil, fmt.Errorf("failed to derive session key: %w", err)
	}
	return &TokenIssuer{key: key, ttl: ttl}, nil
}

// TTL returns the session lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a signed token for u valid from now.
func (i *TokenIssuer) Issue(u *user.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)
	claims := SessionClaims{
		WalletAddress:     u.WalletAddress,
		Username:          u.Username,
		IsProfileComplete: u.IsProfileComplete,
		IsWorldIDVerified: u.IsWorldIDVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    sessionIssuer,
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature and expiry of a session token.
func (i *TokenIssuer) Parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
