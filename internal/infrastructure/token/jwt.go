package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qfnexora/finance-api/internal/core/domain"
	"github.com/qfnexora/finance-api/internal/core/ports"
)

const refreshTokenBytes = 32

// JWTIssuer signs HS256 access tokens and generates opaque refresh tokens.
type JWTIssuer struct {
	secret    string
	accessTTL time.Duration
}

// NewJWTIssuer returns an issuer signing with secret. ttl defaults to
// 15 minutes when not positive.
func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &JWTIssuer{secret: secret, accessTTL: ttl}
}

// IssueAccess signs a short-lived token carrying the account identity.
func (i *JWTIssuer) IssueAccess(accountID string, kind domain.AccountKind) (string, error) {
	claims := jwt.MapClaims{
		"sub":  accountID,
		"kind": string(kind),
		"exp":  time.Now().Add(i.accessTTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(i.secret))
}

// VerifyAccess parses and validates a token, returning its identity claims.
func (i *JWTIssuer) VerifyAccess(token string) (*ports.AccessClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(i.secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidOrExpiredToken
	}

	sub, _ := claims["sub"].(string)
	kind, _ := claims["kind"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidOrExpiredToken
	}

	return &ports.AccessClaims{AccountID: sub, Kind: domain.AccountKind(kind)}, nil
}

// IssueRefresh returns a hex-encoded random token with 32 bytes of entropy.
func (i *JWTIssuer) IssueRefresh() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("refresh token entropy: %w", err)
	}
	return hex.EncodeToString(b), nil
}
