package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// TokenService issues and validates HS256-signed bearer tokens.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue signs a token carrying subject, role, issued-at and expiry claims.
// The expiry is fixed at issuance; there is no refresh mechanism.
func (s *TokenService) Issue(username string, role domain.Role) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  username,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// Parse validates the token and extracts the principal it encodes. It fails
// closed: any malformed, tampered, mis-signed or expired token is an error.
func (s *TokenService) Parse(token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, jwt.ErrTokenInvalidSubject
	}

	roleClaim, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleClaim)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	return &domain.Principal{Username: sub, Role: role}, nil
}

// Validate reports whether the token parses successfully.
func (s *TokenService) Validate(token string) bool {
	_, err := s.Parse(token)
	return err == nil
}
