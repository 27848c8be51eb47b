package ports

// PasswordHasher wraps a memory-hard, salted hashing algorithm. The encoded
// hash embeds salt and parameters so Verify needs no external state.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Verify reports whether the password matches the encoded hash. Malformed
	// hash input is a verification failure, never a panic or an error.
	Verify(hash, password string) bool
}
