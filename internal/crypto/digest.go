package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the number of hash bytes kept in a digest (32 hex chars).
const DigestSize = 16

// Digest returns a short hex digest of an input file's contents.
//
// It hashes with BLAKE2b-256 and truncates to DigestSize bytes.
func Digest(input []byte) string {
	sum := blake2b.Sum256(input)
	return hex.EncodeToString(sum[:DigestSize])
}

// SameDigest reports whether two printed digests name the same input.
func SameDigest(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
