// Package password hashes and verifies user credentials with bcrypt.
//
// bcrypt generates a fresh salt on every call and embeds it in the output,
// so hashing the same plaintext twice yields different stored values that
// both verify. The plaintext is never logged or returned.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes plaintexts for storage and verifies candidates on login.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost.
// Costs outside bcrypt's valid range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash produces a salted one-way hash suitable for direct storage.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
// Any failure, including a malformed stored hash, is a plain false.
func (h *Hasher) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}
