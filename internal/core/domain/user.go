package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the authorization scope carried by an account and its tokens.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

var ErrUnknownRole = errors.New("unknown role")

// ParseRole normalizes a free-form role string into a Role. Comparison is
// case-insensitive and happens exactly once, here.
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleUser):
		return RoleUser, nil
	default:
		return "", ErrUnknownRole
	}
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrResetTokenExpired  = errors.New("reset token has expired")
	ErrMailDelivery       = errors.New("error sending email")
)

// User models a login account. Password is stored according to the configured
// password policy: the legacy plaintext policy keeps it verbatim.
type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Password         string     `json:"-"`
	Role             Role       `json:"role"`
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// HasActiveReset reports whether a reset request is outstanding.
func (u *User) HasActiveReset() bool {
	return u.ResetToken != "" && u.ResetTokenExpiry != nil
}

// Principal is the authenticated identity attached to a request by the auth
// gate. It is threaded explicitly through the request context, never stored
// in a process-global.
type Principal struct {
	Username string
	Role     Role
}
