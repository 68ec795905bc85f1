package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)

const (
	algorithm  = "pbkdf2"
	iterations = 1000
	keyLength  = 64
	saltLength = 16
)

// Hasher implements PasswordHasher backed by PBKDF2.
//
// The stored encoding is colon-delimited and self-describing:
// pbkdf2:sha512:1000:<saltHex>:<hashHex>. The salt is kept as a hex string
// and the hex string itself is fed to the KDF, so records written by older
// deployments verify unchanged.
type Hasher struct {
	hashFunction string
}

// NewHasher creates a Hasher using PBKDF2-SHA512.
func NewHasher() *Hasher {
	return &Hasher{hashFunction: "sha512"}
}

func hashConstructor(name string) (func() hash.Hash, error) {
	switch name {
	case "sha512":
		return sha512.New, nil
	case "sha256":
		return sha256.New, nil
	default:
		return nil, fmt.Errorf("unsupported hash function: %s", name)
	}
}

// Hash derives a key from password with a fresh random salt and returns the
// stored encoding.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	newHash, err := hashConstructor(h.hashFunction)
	if err != nil {
		return "", err
	}

	derived := pbkdf2.Key([]byte(password), []byte(saltHex), iterations, keyLength, newHash)

	return strings.Join([]string{
		algorithm,
		h.hashFunction,
		strconv.Itoa(iterations),
		saltHex,
		hex.EncodeToString(derived),
	}, ":"), nil
}

// Verify re-derives password with the parameters stored in encoded and
// compares in constant time. A malformed encoding is reported as an error,
// never as a password mismatch.
func (h *Hasher) Verify(password string, encoded string) (bool, error) {
	parts := strings.Split(encoded, ":")
	if len(parts) != 5 {
		return false, fmt.Errorf("malformed password encoding: expected 5 fields, got %d", len(parts))
	}
	if parts[0] != algorithm {
		return false, fmt.Errorf("unsupported algorithm: %s", parts[0])
	}

	newHash, err := hashConstructor(parts[1])
	if err != nil {
		return false, err
	}

	iter, err := strconv.Atoi(parts[2])
	if err != nil || iter <= 0 {
		return false, fmt.Errorf("malformed iteration count: %s", parts[2])
	}

	stored, err := hex.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("malformed derived hash: %w", err)
	}

	derived := pbkdf2.Key([]byte(password), []byte(parts[3]), iter, len(stored), newHash)

	return subtle.ConstantTimeCompare(stored, derived) == 1, nil
}
