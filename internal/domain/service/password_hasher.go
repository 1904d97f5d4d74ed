// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher abstracts the one-way secret hashing algorithm.
type PasswordHasher interface {
	// Hash generates a freshly salted hash from a plaintext secret.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. A malformed hash never matches.
	Check(password, hash string) bool
}
