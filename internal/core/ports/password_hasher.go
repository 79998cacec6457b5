package ports

// PasswordHasher wraps a one-way adaptive hash for credential storage.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A mismatch is a
	// plain false, never an error.
	Verify(plaintext, digest string) bool
}
