// Package password implements one-way credential hashing on top of bcrypt.
//
// Inputs are truncated to the first 72 bytes before hashing, matching
// bcrypt's maximum input size. The same truncation is applied on
// verification, so passwords that differ only after byte 72 compare equal.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/zarclabs/zarc-auth/internal/common"
)

// MaxPasswordBytes is the number of input bytes bcrypt actually consumes.
const MaxPasswordBytes = 72

// Hash produces a salted bcrypt hash of plain using the given cost. The
// returned string is self-describing (algorithm, cost, salt, digest), so
// nothing besides it needs to be stored.
//
// An empty password returns common.ErrorInvalidInput: callers are expected
// to have validated input long before this point.
func Hash(plain string, cost int) (string, error) {
	if plain == "" {
		return "", common.ErrorInvalidInput
	}

	hashed, err := bcrypt.GenerateFromPassword(truncate(plain), cost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether candidate matches the stored bcrypt hash. It never
// returns an error: an empty or malformed input simply does not match.
// The underlying digest comparison is constant-time.
func Verify(candidate string, stored string) bool {
	if candidate == "" || stored == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), truncate(candidate)) == nil
}

func truncate(s string) []byte {
	b := []byte(s)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}
