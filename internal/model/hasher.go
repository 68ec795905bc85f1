package model

// PasswordHasher hashes plaintext passwords into a self-describing stored
// encoding and verifies candidates against it. Verify returns an error only
// for a malformed stored encoding, which is a data-integrity problem and
// must not be reported as a wrong password.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, encoded string) (bool, error)
}
