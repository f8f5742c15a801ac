package common

import "crypto/rand"

// GenerateRandByteArray returns size bytes from crypto/rand.
func GenerateRandByteArray(size int) []byte {
	buf := make([]byte, size)
	_, _ = rand.Read(buf)
	return buf
}

// WipeByteArray zeroes buf in place.
func WipeByteArray(buf []byte) {
	clear(buf)
}
