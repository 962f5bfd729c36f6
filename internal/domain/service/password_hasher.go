// Package service declares the ports that usecases depend on and infra implements:
// credentials, tokens, push delivery, events, live change signals, object storage and QR codes.
package service

// PasswordHasher owns the password credential of a registered user.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool

	// ValidatePasswordStrength returns ErrWeakPassword for passwords outside the configured length bounds.
	ValidatePasswordStrength(password string) error
}
