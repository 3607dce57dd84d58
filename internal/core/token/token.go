// Package token issues and verifies the signed bearer tokens that prove
// identity and role on every protected request.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ratemart/store-rating-system/internal/core/domain"
)

// DefaultTTL is the fixed token lifetime. There is no refresh or revocation:
// a token stays valid for its full TTL.
const DefaultTTL = time.Hour

// Claims is the verified content of a bearer token.
type Claims struct {
	UserID    int64
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Service signs and verifies HS256 tokens. The secret is loaded once from
// configuration at construction and never mutated afterwards.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a Service. A non-positive ttl falls back to DefaultTTL.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the subject id and role, expiring ttl from now.
func (s *Service) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token. Any failure — malformed input, wrong
// signature, expired token, unknown role — collapses to ErrInvalidToken so
// the caller cannot distinguish why a credential was rejected.
func (s *Service) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, domain.ErrInvalidToken
	}

	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(raw, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := mc["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	roleStr, _ := mc["role"].(string)
	role := domain.Role(roleStr)
	if !role.Valid() {
		return nil, domain.ErrInvalidToken
	}

	claims := &Claims{UserID: userID, Role: role}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}
