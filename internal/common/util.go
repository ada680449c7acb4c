package common

import "crypto/rand"

// GenerateRandByteArray returns size cryptographically random bytes.
// It panics on entropy failure, which is unrecoverable anyway.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray zeroes the slice in place. Callers use it to scrub
// passwords read from the terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
