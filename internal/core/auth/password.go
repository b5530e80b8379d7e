// Package auth holds the two security-sensitive primitives of the service:
// one-way password hashing and signed token issuance/verification. Both are
// constructed once at startup with their configuration and are safe for
// concurrent use.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash is returned by Verify when the stored hash is not a valid
// bcrypt string. A plain mismatch is not an error.
var ErrMalformedHash = errors.New("malformed password hash")

const DefaultBcryptCost = 10

// PasswordHasher wraps bcrypt with a fixed work factor. The salt is generated
// per call and embedded in the output, so two hashes of the same plaintext
// differ and verification needs no separate salt storage.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext matches hash. The comparison is
// constant-time inside bcrypt. A mismatch returns (false, nil); only a hash
// that cannot be parsed at all produces an error.
func (h *PasswordHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, ErrMalformedHash
	}
}
