package auth

import "golang.org/x/crypto/bcrypt"

// MinCost is the lowest bcrypt work factor accepted for new hashes.
// Previously stored hashes carry their own cost and verify regardless.
const MinCost = 10

type PasswordHasher struct {
	cost      int
	dummyHash []byte
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < MinCost {
		cost = MinCost
	}

	// Fixed hash used to equalize timing on lookup misses.
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), cost)
	if err != nil {
		panic(err)
	}

	return &PasswordHasher{
		cost:      cost,
		dummyHash: dummyHash,
	}
}

// Hash produces a salted one-way digest of plaintext. The salt and cost
// are embedded in the output.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify recomputes the digest using the salt embedded in stored and
// compares in constant time.
func (h *PasswordHasher) Verify(plaintext, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plaintext)) == nil
}

// DummyCompare burns one bcrypt comparison against a fixed hash so that a
// failed user lookup costs about as much as a wrong password.
func (h *PasswordHasher) DummyCompare(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plaintext))
}
