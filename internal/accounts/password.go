package accounts

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// newSalt returns a fresh random salt for one account's credential.
func newSalt() []byte {
	return common.GenerateRandByteArray(saltSize)
}

// deriveVerifier stretches the password with argon2id under the given salt
// and hashes the result. Only the verifier is ever stored at rest.
func deriveVerifier(password, salt []byte) []byte {
	key := argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
	sum := sha256.Sum256(key)
	return sum[:]
}

// verifyPassword re-derives the verifier from the candidate password and
// compares it in constant time.
func verifyPassword(password, salt, verifier []byte) bool {
	candidate := deriveVerifier(password, salt)
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
