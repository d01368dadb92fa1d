package service

import "golang.org/x/crypto/bcrypt"

// PasswordPolicy decides how account passwords are stored and compared.
//
// Plaintext reproduces the legacy system's behavior: passwords are persisted
// and compared verbatim. It is the default and is surfaced as an explicit
// configuration flag rather than an accident. With Plaintext disabled,
// passwords are stored as bcrypt hashes.
type PasswordPolicy struct {
	Plaintext bool
}

// Store converts a submitted password into its persisted form.
func (p PasswordPolicy) Store(password string) (string, error) {
	if p.Plaintext {
		return password, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether a submitted password matches the persisted form.
func (p PasswordPolicy) Verify(stored, submitted string) bool {
	if p.Plaintext {
		return stored == submitted
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}
