package ports

import "github.com/peoplehub/employee-system/internal/core/domain"

// TokenService issues and checks signed bearer tokens.
type TokenService interface {
	// Issue signs a token carrying the subject, role, issued-at and expiry.
	Issue(username string, role domain.Role) (string, error)
	// Parse validates the token and returns the principal it encodes.
	// It fails closed: malformed, unsigned, tampered or expired tokens
	// return an error.
	Parse(token string) (*domain.Principal, error)
	// Validate reports whether the token would parse successfully.
	Validate(token string) bool
}
