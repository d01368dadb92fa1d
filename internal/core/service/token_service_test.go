package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("alice", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	principal, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if principal.Username != "alice" {
		t.Fatalf("unexpected subject: %s", principal.Username)
	}
	if principal.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
	if !svc.Validate(token) {
		t.Fatalf("Validate returned false for a fresh token")
	}
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue("alice", domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc := NewTokenService("secret-b", time.Hour)
	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
	if svc.Validate(token) {
		t.Fatalf("Validate accepted a token signed with another secret")
	}
}

func TestTokenService_Parse_Expired(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": string(domain.RoleUser),
		"exp":  time.Now().Add(-time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("expected error for expired token")
	}
}

func TestTokenService_Parse_WrongAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": string(domain.RoleUser),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("expected error for HS512-signed token")
	}
}

func TestTokenService_Parse_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Parse(token); err == nil {
			t.Fatalf("expected error for malformed token %q", token)
		}
	}
}

func TestTokenService_Parse_UnknownRoleClaim(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "alice",
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Parse(token); err == nil {
		t.Fatalf("expected error for unknown role claim")
	}
}
