package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor applied when none is configured.
const DefaultCost = 12

// PasswordHasher defines hashing strategy for credentials. Hashing is
// CPU-heavy, so implementations take a context to allow callers to bail
// out while waiting for capacity.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash, password string) error
}

// BcryptHasher uses bcrypt to hash passwords. Salt is generated per call,
// so hashing the same plaintext twice yields different outputs.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates BcryptHasher with provided cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns bcrypt hash for provided password.
func (h *BcryptHasher) Hash(_ context.Context, password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks password against stored hash. bcrypt's comparison does
// not leak the mismatch position through timing.
func (h *BcryptHasher) Compare(_ context.Context, hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
