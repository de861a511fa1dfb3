// Package service declares domain-facing interfaces implemented by infrastructure:
// password hashing, session tokens and listing caches.
package service

// PasswordHasher turns plaintext passwords into stored hashes and verifies them.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
