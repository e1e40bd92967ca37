package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes user passwords with bcrypt.
//
// The password is first turned into a hex-encoded HMAC-SHA256 digest keyed
// with the application password hash key. The digest is always 64 bytes,
// which keeps the bcrypt input under its 72-byte limit regardless of the
// password length.
type PasswordHasher struct {
	pool sync.Pool
	cost int
}

// NewPasswordHasher creates a PasswordHasher keyed with hashKey.
// A cost of zero selects bcrypt.DefaultCost.
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher("my-secret-key", 0)
//	digest, err := hasher.Hash("pw123")
func NewPasswordHasher(hashKey string, cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	key := []byte(hashKey)
	return &PasswordHasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
		cost: cost,
	}
}

// Hash returns the bcrypt digest of password.
func (p *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(p.preHash(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// Compare reports whether password matches the stored bcrypt digest.
// A malformed digest is reported as a mismatch.
func (p *PasswordHasher) Compare(passwordHash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(passwordHash), p.preHash(password))
	return err == nil
}

// preHash computes hex(HMAC-SHA256(password)) with a hasher pulled from the
// pool.
func (p *PasswordHasher) preHash(password string) []byte {
	h := p.pool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(password))
	sum := h.Sum(nil)

	h.Reset()
	p.pool.Put(h)

	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum)
	return out
}
