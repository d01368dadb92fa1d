package ports

import (
	"context"

	"github.com/peoplehub/employee-system/internal/core/domain"
)

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// RequestPasswordReset issues a fresh single-use token for the account
	// matching email, persists it, and mails the reset link.
	RequestPasswordReset(ctx context.Context, email string) error
	// ResetPassword exchanges a valid, unexpired token for a password
	// change and clears the token so it can never be reused.
	ResetPassword(ctx context.Context, token, newPassword string) error
	// EnsureAdmin idempotently guarantees the bootstrap admin account
	// exists, updating its email when it already does.
	EnsureAdmin(ctx context.Context) error
}
