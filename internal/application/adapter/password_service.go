// Package adapter defines the interfaces the application layer depends on.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// Hash hashes a plain-text password.
	Hash(password string) (string, error)

	// Compare compares a plain-text password against a hash.
	Compare(hash, password string) error
}
